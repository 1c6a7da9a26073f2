package cake

import (
	"fmt"
	"io"
)

// Bake writes the baking status line. A zero or absent duration means "no
// timer": nothing is printed, the cake is simply baked.
func Bake(w io.Writer, minutes int) {
	if minutes <= 0 {
		return
	}
	fmt.Fprintf(w, "Baking for %dmins\n", minutes)
}

// AddFancyIcing applies the fancy icing decoration.
func AddFancyIcing(w io.Writer) {
	fmt.Fprintln(w, "Fancy icing applied")
}

// PutInBox packs the cake into a gift box.
func PutInBox(w io.Writer) {
	fmt.Fprintln(w, "Cake packed in a gift box")
}
