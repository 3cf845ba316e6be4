/*
Package discretize implements supervised entropy-based discretization of a
continuous attribute with the Fayyad–Irani MDLP stopping criterion.

Samples are sorted and collapsed into blocks of equal values. Only block
boundaries are candidate cut points (Elomaa–Rousu), so the search never
separates two samples sharing a value. The range of all blocks is split
recursively at the cut minimising the class information entropy until the
Criterion rejects the best cut; the leaves of the resulting tree become the
intervals of a Categorizer.

Basic usage:

	values := []float64{1, 2, 3, 4, 5}
	labels := []string{"a", "a", "a", "b", "b"}

	cat, err := discretize.Discretize(ctx, values, labels)
	if err != nil {
		return err
	}
	for _, iv := range cat.Intervals() {
		fmt.Println(iv.Label) // ]-Inf, 3.5] then ]3.5, Inf[
	}
	_, label, _ := cat.Categorize(4.2) // "]3.5, Inf["

Intervals are left-open and right-closed, the first one unbounded below and
the last one unbounded above, so every real number belongs to exactly one
interval. Interval bounds are printed with the shortest decimal text that
parses back to the same float64, and the bounds used for membership are the
parsed text, so a categorizer rebuilt from its labels classifies identically.

The builder is single-threaded by default. WithWorkers lets sibling
subtrees be built concurrently; the resulting tree is the same for any
number of workers.
*/
package discretize
