// Package diagram draws the schematic figures that accompany the defocus demo:
// a side-by-side pinhole/lens ray diagram and three larger schematics
// (pinhole projection, thin lens focusing, circle of confusion).
//
// Figures are plain vector drawings made with github.com/gogpu/gg and labeled
// with the Go Regular font. They take no runtime data.
//
//	if err := diagram.ThinLens().SavePNG("thin_lens.png"); err != nil {
//	    return err
//	}
//
// Logging goes through gg.Logger, which lensdemo.SetLogger configures.
package diagram
