package components

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestBuilderDefaultPosition(t *testing.T) {
	frame, err := NewFrameBuilder(GridSize{Width: 2, Height: 2}).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if frame.Position != (Offset{}) {
		t.Errorf("default position = %+v, want (0,0)", frame.Position)
	}
}

func TestBuilderPositionLastWriteWins(t *testing.T) {
	frame, err := NewFrameBuilder(GridSize{Width: 4, Height: 4}).
		Position(Offset{X: 5, Y: 5}).
		Position(Offset{X: 1, Y: 1}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if frame.Position != (Offset{X: 1, Y: 1}) {
		t.Errorf("position = %+v, want (1,1)", frame.Position)
	}
}

func TestBuilderPositionDoesNotAffectIndex(t *testing.T) {
	frame, err := NewFrameBuilder(GridSize{Width: 3, Height: 2}).
		Position(Offset{X: 640, Y: 480}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := frame.Index(Coordinate{2, 1}); got != 5 {
		t.Errorf("Index((2,1)) = %d, want 5 regardless of position", got)
	}
}

func TestBuilderRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		builder *FrameBuilder
		wantErr error
	}{
		{
			name:    "zero width",
			builder: NewFrameBuilder(GridSize{Width: 0, Height: 3}),
			wantErr: ErrInvalidSize,
		},
		{
			name:    "zero height",
			builder: NewFrameBuilder(GridSize{Width: 3, Height: 0}),
			wantErr: ErrInvalidSize,
		},
		{
			name:    "zero area",
			builder: NewFrameBuilder(GridSize{}),
			wantErr: ErrInvalidSize,
		},
		{
			name:    "negative width",
			builder: NewFrameBuilder(GridSize{Width: -2, Height: 3}),
			wantErr: ErrInvalidSize,
		},
		{
			name:    "cell count overflows int",
			builder: NewFrameBuilder(GridSize{Width: math.MaxInt/2 + 1, Height: 2}),
			wantErr: ErrInvalidSize,
		},
		{
			name:    "square cell count overflows int",
			builder: NewFrameBuilder(GridSize{Width: math.MaxInt, Height: math.MaxInt}),
			wantErr: ErrInvalidSize,
		},
		{
			name:    "negative position",
			builder: NewFrameBuilder(GridSize{Width: 2, Height: 2}).Position(Offset{X: -1, Y: 0}),
			wantErr: ErrInvalidPosition,
		},
		{
			name:    "empty rows",
			builder: NewFrameBuilderFromRows(nil),
			wantErr: ErrInvalidSize,
		},
		{
			name:    "rows without columns",
			builder: NewFrameBuilderFromRows([][]Pixel{{}, {}}),
			wantErr: ErrInvalidSize,
		},
		{
			name:    "ragged rows",
			builder: NewFrameBuilderFromRows([][]Pixel{make([]Pixel, 3), make([]Pixel, 2)}),
			wantErr: ErrRaggedRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := tt.builder.Build()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if frame != nil {
				t.Error("Build() should not return a frame on error")
			}
		})
	}
}

func TestBuilderConsumedAfterBuild(t *testing.T) {
	b := NewFrameBuilder(GridSize{Width: 2, Height: 2})
	first, err := b.Build()
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}

	second, err := b.Build()
	if !errors.Is(err, ErrBuilderConsumed) {
		t.Errorf("second Build error = %v, want ErrBuilderConsumed", err)
	}
	if second != nil {
		t.Error("second Build should not return a frame")
	}

	// 第一次构建的帧仍然完整可用
	if first.Area() != 4 {
		t.Errorf("first frame area = %d, want 4", first.Area())
	}
}

func TestBuilderFromRows(t *testing.T) {
	a := ebiten.NewImage(1, 1)
	b := ebiten.NewImage(1, 1)
	rows := [][]Pixel{
		{NewSpritePixel(a), {}, {}},
		{{}, {}, NewSpritePixel(b)},
	}

	frame, err := NewFrameBuilderFromRows(rows).Position(Offset{X: 16, Y: 32}).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if frame.Size() != (GridSize{Width: 3, Height: 2}) {
		t.Errorf("size = %+v, want 3x2", frame.Size())
	}
	if frame.ReadPixel(Coordinate{0, 0}).Sprite != a {
		t.Error("rows[0][0] should map to (0,0)")
	}
	if frame.ReadPixel(Coordinate{2, 1}).Sprite != b {
		t.Error("rows[1][2] should map to (2,1)")
	}
	if frame.Position != (Offset{X: 16, Y: 32}) {
		t.Errorf("position = %+v, want (16,32)", frame.Position)
	}

	// 构建器复制了像素，修改源切片不影响帧
	rows[0][1] = NewSpritePixel(b)
	if frame.ReadPixel(Coordinate{1, 0}).HasSprite() {
		t.Error("frame should not share storage with the source rows")
	}
}
