// Package ioformat defines the YAML document shapes exchanged across the
// two executables (spec.md §6): the generator's own "settings" input
// (recovered from original_source/instance_gen/args.rs, since spec.md only
// documents the generator's *output*), the "instance" document that is
// simultaneously generator output and solver input, and the solver's
// "solution" output. It also streams multi-document YAML files filtering
// on a kind/id discriminator pair, the Go analogue of
// original_source/solver/args.rs's serde_yaml::Deserializer loop, and
// bridges those documents to and from the grid/agent/generator/planner
// domain types.
package ioformat
