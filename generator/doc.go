// Package generator drives the instance-generation pipeline (spec.md
// §4.10): sample a Perlin field, select its K smallest values to carve out
// obstacles, spawn and walk N scripted agents, then pick init/goal cells
// that avoid them. The result is everything an instance YAML document
// needs (package ioformat handles the serialisation itself).
//
// Grounded on original_source/src/instance_gen/main.rs's gen_field_parameters
// plus main(), with the bounded max-heap quantile selection from
// noise_value.rs's NoiseValue ordering.
package generator
