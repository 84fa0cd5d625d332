package platform

import "testing"

func TestParseBBox_Valid(t *testing.T) {
	b, err := ParseBBox("10,20,300,400")
	if err != nil {
		t.Fatal(err)
	}
	if b.X != 10 || b.Y != 20 || b.Width != 300 || b.Height != 400 {
		t.Errorf("got %+v, want {10 20 300 400}", b)
	}
}

func TestParseBBox_WithSpaces(t *testing.T) {
	b, err := ParseBBox("10, 20, 300, 400")
	if err != nil {
		t.Fatal(err)
	}
	if b.X != 10 || b.Y != 20 || b.Width != 300 || b.Height != 400 {
		t.Errorf("got %+v, want {10 20 300 400}", b)
	}
}

func TestParseBBox_Invalid(t *testing.T) {
	tests := []string{
		"",
		"10,20,300",
		"10,20,300,400,500",
		"a,b,c,d",
		"10,20,abc,400",
		"10,20,-1,400",
	}
	for _, s := range tests {
		_, err := ParseBBox(s)
		if err == nil {
			t.Errorf("ParseBBox(%q) should fail", s)
		}
	}
}

func TestBoundsCenter(t *testing.T) {
	tests := []struct {
		b     Bounds
		wantX int
		wantY int
	}{
		{Bounds{X: 5, Y: 5, Width: 10, Height: 20}, 10, 15},
		{Bounds{X: 0, Y: 0, Width: 11, Height: 7}, 5, 3},
		{Bounds{X: 100, Y: 40, Width: 0, Height: 0}, 100, 40},
		{Bounds{X: -20, Y: -10, Width: 5, Height: 3}, -18, -9},
	}
	for _, tt := range tests {
		x, y := tt.b.Center()
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%+v.Center() = (%d, %d), want (%d, %d)", tt.b, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{-6, 3, -2},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseMouseButton_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  MouseButton
	}{
		{"", MouseLeft},
		{"left", MouseLeft},
		{"Left", MouseLeft},
		{"LEFT", MouseLeft},
		{"right", MouseRight},
		{"Right", MouseRight},
		{"middle", MouseMiddle},
		{"Middle", MouseMiddle},
	}
	for _, tt := range tests {
		got, err := ParseMouseButton(tt.input)
		if err != nil {
			t.Errorf("ParseMouseButton(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseMouseButton(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseMouseButton_Invalid(t *testing.T) {
	_, err := ParseMouseButton("invalid")
	if err == nil {
		t.Error("ParseMouseButton(\"invalid\") should fail")
	}
}

func TestMouseButtonEvents(t *testing.T) {
	if MouseLeft.Press() != ButtonOnePress || MouseLeft.Release() != ButtonOneRelease {
		t.Error("left button should map to b1p/b1r")
	}
	if MouseRight.Press() != ButtonThreePress || MouseRight.Release() != ButtonThreeRelease {
		t.Error("right button should map to b3p/b3r")
	}
	if MouseMiddle.Press().String() != "b2p" {
		t.Errorf("middle press = %s, want b2p", MouseMiddle.Press())
	}
}
