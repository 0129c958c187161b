package lensdemo

import "testing"

func TestPhotoOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []PhotoOption
		width int
		want  Interpolation
	}{
		{"defaults", nil, DefaultPhotoWidth, Bicubic},
		{"width", []PhotoOption{WithTargetWidth(640)}, 640, Bicubic},
		{"keep size", []PhotoOption{WithTargetWidth(0)}, 0, Bicubic},
		{"filter", []PhotoOption{WithInterpolation(NearestNeighbor)}, DefaultPhotoWidth, NearestNeighbor},
		{"empty filter ignored", []PhotoOption{WithInterpolation(BiLinear), WithInterpolation("")}, DefaultPhotoWidth, BiLinear},
		{"last wins", []PhotoOption{WithTargetWidth(10), WithTargetWidth(20)}, 20, Bicubic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultPhotoOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if o.targetWidth != tt.width {
				t.Errorf("targetWidth = %d, want %d", o.targetWidth, tt.width)
			}
			if o.interpolation != tt.want {
				t.Errorf("interpolation = %q, want %q", o.interpolation, tt.want)
			}
		})
	}
}
