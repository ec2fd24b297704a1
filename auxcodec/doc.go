// Package auxcodec serialises and deserialises an auxtable.Table to the
// zlib-compressed, fixed-width binary aux file format (spec.md §6 "Aux
// file"). Grounded on original_source/solver/main.rs::load_aux
// (flate2::ZlibDecoder + bincode::config::standard()); this side uses
// compress/zlib and encoding/binary directly (see SPEC_FULL.md §2: no pack
// library offers a closer fit for a bespoke fixed-int wire format than the
// standard library's own binary codec).
package auxcodec
