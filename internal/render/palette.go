package render

// Palette is a qualitative color sequence; colors repeat when there are more points than colors.
type Palette []string

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return PaletteDefault.At(i)
	}
	return p[i%len(p)]
}

var (
	PaletteDefault = Palette{"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A", "#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52"}
	PaletteSet1    = Palette{"#E41A1C", "#377EB8", "#4DAF4A", "#984EA3", "#FF7F00", "#FFFF33", "#A65628", "#F781BF", "#999999"}
	PaletteSet2    = Palette{"#66C2A5", "#FC8D62", "#8DA0CB", "#E78AC3", "#A6D854", "#FFD92F", "#E5C494", "#B3B3B3"}
	PaletteSet3    = Palette{"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072", "#80B1D3", "#FDB462", "#B3DE69", "#FCCDE5", "#D9D9D9", "#BC80BD", "#CCEBC5", "#FFED6F"}
	PalettePastel  = Palette{"#66C5CC", "#F6CF71", "#F89C74", "#DCB0F2", "#87C55F", "#9EB9F3", "#FE88B1", "#C9DB74", "#8BE0A4", "#B497E7", "#B3B3B3"}

	// single-series line colors
	PaletteFitLine   = Palette{"#3498db"}
	PaletteErrorLine = Palette{"#e74c3c"}
)
