// Package impls classifies compute-kernel implementations by name.
//
// Backends name each kernel implementation with a free-form string such as
// "jit_avx512_1x1" or "gemm_blas"; Parse maps such a name to the set of
// capability flags it advertises. The layouts package has no dependency on
// this classification, it only sits at the same boundary: compute layers use
// both to pick an implementation and address its storage.
package impls

import "strings"

// Type is a bitmask of capability flags advertised by a kernel
// implementation name.
type Type uint32

const (
	// Ref marks a plain reference implementation.
	Ref Type = 1 << iota
	// JIT marks a just-in-time compiled implementation.
	JIT
	// GEMM marks an implementation built on a matrix-multiply primitive.
	GEMM
	// BLAS marks a call into a BLAS library.
	BLAS
	// SSE42 through AVX512 mark the vector instruction set used.
	SSE42
	AVX2
	AVX512
	// Any marks an implementation not tied to a specific instruction set.
	Any
	// Winograd marks a Winograd convolution.
	Winograd
	// Conv1x1 marks the 1x1-convolution specialization.
	Conv1x1
	// DepthWise marks the depthwise-convolution specialization.
	DepthWise
	// Reorder marks a data-reordering (layout conversion) kernel.
	Reorder
)

// Unknown is the empty mask: no recognized token.
const Unknown Type = 0

// Common combinations.
const (
	RefAny   = Ref | Any
	JITAny   = JIT | Any
	GEMMAny  = GEMM | Any
	GEMMBlas = GEMM | BLAS

	JITSSE42  = JIT | SSE42
	JITAVX2   = JIT | AVX2
	JITAVX512 = JIT | AVX512

	JITAVX512Winograd = JIT | AVX512 | Winograd
)

// searchWords maps each known token to the flag it sets. Most tokens name
// their flag directly; the last two are intentional aliases, not typos:
// plain "nchw" kernels are reference implementations, and "wino" tags
// Winograd convolutions.
var searchWords = []struct {
	token string
	flag  Type
}{
	{"ref", Ref},
	{"jit", JIT},
	{"gemm", GEMM},
	{"blas", BLAS},
	{"sse42", SSE42},
	{"avx2", AVX2},
	{"avx512", AVX512},
	{"any", Any},
	{"_1x1", Conv1x1},
	{"_dw", DepthWise},
	{"reorder", Reorder},

	{"nchw", Ref},
	{"wino", Winograd},
}

// Parse returns the union of the flags whose tokens appear in name. Matching
// is case-sensitive substring containment, cumulative over all tokens; a name
// containing no known token parses to Unknown.
func Parse(name string) Type {
	res := Unknown
	for _, sw := range searchWords {
		if strings.Contains(name, sw.token) {
			res |= sw.flag
		}
	}
	return res
}

// Has reports whether every flag in flags is set in t.
func (t Type) Has(flags Type) bool {
	return t&flags == flags
}

// flagNames, in display order.
var flagNames = []struct {
	flag Type
	name string
}{
	{Ref, "ref"},
	{JIT, "jit"},
	{GEMM, "gemm"},
	{BLAS, "blas"},
	{SSE42, "sse42"},
	{AVX2, "avx2"},
	{AVX512, "avx512"},
	{Any, "any"},
	{Winograd, "winograd"},
	{Conv1x1, "1x1"},
	{DepthWise, "dw"},
	{Reorder, "reorder"},
}

// String lists the set flags joined by "+", e.g. "jit+avx512+1x1", or
// "unknown" for the empty mask.
func (t Type) String() string {
	if t == Unknown {
		return "unknown"
	}
	var parts []string
	for _, fn := range flagNames {
		if t&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "+")
}
