package raytracer

import "testing"

func TestCameraOptionsValidateRejectsNonPositiveDimensions(t *testing.T) {
	cases := []CameraOptions{
		NewCameraOptions(0, 10),
		NewCameraOptions(10, 0),
		NewCameraOptions(-1, 10),
	}
	for _, c := range cases {
		if err := c.validate(); err == nil {
			t.Errorf("expected an error for %+v", c)
		}
	}
}

func TestCameraOptionsValidateAcceptsDefaults(t *testing.T) {
	c := NewCameraOptions(100, 100)
	if err := c.validate(); err != nil {
		t.Errorf("unexpected error for default options: %v", err)
	}
}

func TestRenderOptionsValidateRejectsNegativeDepth(t *testing.T) {
	opts := RenderOptions{Depth: -1, Mode: ModeFull}
	if err := opts.validate(); err == nil {
		t.Errorf("expected an error for negative depth")
	}
}

func TestRenderOptionsValidateRejectsUnknownMode(t *testing.T) {
	opts := RenderOptions{Depth: 1, Mode: RenderMode("bogus")}
	if err := opts.validate(); err == nil {
		t.Errorf("expected an error for an unknown render mode")
	}
}

func TestRenderOptionsValidateAcceptsEveryKnownMode(t *testing.T) {
	for _, mode := range []RenderMode{ModeFull, ModeNormal, ModeDepth} {
		opts := RenderOptions{Depth: 1, Mode: mode}
		if err := opts.validate(); err != nil {
			t.Errorf("unexpected error for mode %v: %v", mode, err)
		}
	}
}
