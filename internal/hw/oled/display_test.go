package oled

import "testing"

func TestFaceByName(t *testing.T) {
	for _, name := range []string{"", "small", "large"} {
		face, err := FaceByName(name)
		if err != nil {
			t.Errorf("FaceByName(%q) error = %v", name, err)
		}
		if face == nil {
			t.Errorf("FaceByName(%q) returned nil face", name)
		}
	}

	if _, err := FaceByName("huge"); err == nil {
		t.Error("FaceByName(\"huge\") should fail")
	}
}

func TestFacesFitThreeRows(t *testing.T) {
	// Three rows at the face's natural pitch must fit on the 64 px panel
	// for the small face; the large face is allowed to clip row three's
	// descenders but its baseline must still be on the glass.
	small, _ := FaceByName("small")
	pitch := small.Metrics().Height.Ceil()
	if topMargin+3*pitch > Height {
		t.Errorf("small face pitch %d overflows %d px panel", pitch, Height)
	}

	large, _ := FaceByName("large")
	ascent := large.Metrics().Ascent.Ceil()
	pitch = large.Metrics().Height.Ceil()
	lastBaseline := topMargin + 2*pitch + ascent
	if lastBaseline > Height {
		t.Errorf("large face third baseline %d is off the %d px panel", lastBaseline, Height)
	}
}
