// Package kernel publishes the static layout contracts consumed by
// ahead-of-time code generation.
//
// A Signature describes one container kind as an ordered list of typed
// fields whose lengths follow symbolic extent rules (rows+1 entries, one
// entry per stored element, and so on); a compiler resolves the extents
// against concrete shapes at specialization time. A Spec names a kernel,
// declares its concurrency mode and lists the signatures of its inputs and
// outputs. Everything here is data: the package performs no compilation
// itself.
package kernel
