package kernel_test

import (
	"fmt"

	"github.com/nmtrmail/decades-documentation/kernel"
)

// ExampleSignatureFor resolves a container kind and walks its field layout.
func ExampleSignatureFor() {
	sig, err := kernel.SignatureFor(kernel.KindCSR)
	if err != nil {
		fmt.Println("resolve failed:", err)
		return
	}
	for _, f := range sig.Fields {
		fmt.Printf("%s %s[%s]\n", f.Name, f.Elem, f.Extent)
	}
	// Output:
	// rows int[scalar]
	// cols int[scalar]
	// indptr int[rows+1]
	// indices int[nnz]
	// data float[nnz]
}

// ExampleNewSpec declares a multi-threaded sparse kernel.
func ExampleNewSpec() {
	in, _ := kernel.SignatureFor(kernel.KindCSR)
	out, _ := kernel.SignatureFor(kernel.KindCOO)

	spec, err := kernel.NewSpec("spmv", kernel.MultiThreaded,
		[]kernel.Signature{in}, []kernel.Signature{out})
	if err != nil {
		fmt.Println("declare failed:", err)
		return
	}
	fmt.Printf("%s (%s): %s -> %s\n",
		spec.Name, spec.Mode, spec.Inputs[0].Kind, spec.Outputs[0].Kind)
	// Output:
	// spmv (multi-threaded): csr -> coo
}
