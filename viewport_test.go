package forest

import "testing"

func TestViewportSyncSize(t *testing.T) {
	tests := []struct {
		name        string
		container   Container
		start       [2]int
		wantW       int
		wantH       int
		wantChanged bool
	}{
		{"attached", &FixedContainer{W: 640, H: 480}, [2]int{0, 0}, 640, 480, true},
		{"same size", &FixedContainer{W: 640, H: 480}, [2]int{640, 480}, 640, 480, false},
		{"detached", &FixedContainer{W: 640, H: 480, Detached: true}, [2]int{10, 20}, 10, 20, false},
		{"nil container", nil, [2]int{10, 20}, 10, 20, false},
		{"negative clamps", &FixedContainer{W: -5, H: 300}, [2]int{10, 20}, 0, 300, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{width: tt.start[0], height: tt.start[1]}
			changed := v.SyncSize(tt.container)
			w, h := v.Size()
			if w != tt.wantW || h != tt.wantH || changed != tt.wantChanged {
				t.Errorf("got %dx%d changed=%v, want %dx%d changed=%v",
					w, h, changed, tt.wantW, tt.wantH, tt.wantChanged)
			}
		})
	}
}

func TestViewportTracksEveryResize(t *testing.T) {
	r := newTestRig(ModeAmbient)
	r.attach()
	sizes := [][2]int{{1024, 768}, {320, 240}, {1920, 400}, {320, 240}}
	for _, sz := range sizes {
		r.container.W, r.container.H = sz[0], sz[1]
		r.f.Resize()
		if w, h := r.f.Size(); w != sz[0] || h != sz[1] {
			t.Errorf("size = %dx%d, want %dx%d", w, h, sz[0], sz[1])
		}
	}
}

func TestFixedContainerResize(t *testing.T) {
	c := &FixedContainer{}
	if err := c.Resize(100, 50); err != nil {
		t.Fatal(err)
	}
	if w, h, ok := c.ContentSize(); w != 100 || h != 50 || !ok {
		t.Errorf("ContentSize = %d, %d, %v", w, h, ok)
	}
	if err := c.Resize(-1, 50); err == nil {
		t.Error("expected error for negative width")
	}
}
