package testcases

var outlineCases = []TestCase{
	{
		Name:   "square_4x4",
		Path:   rectangle(1, 1, 3, 3),
		Width:  4,
		Height: 4,
		Op:     Fill{Rule: Outline},
	},
	{
		Name:   "bottom_right_to_left",
		Path:   triangle(2, 0, 4, 2, 0, 2),
		Width:  5,
		Height: 3,
		Op:     Fill{Rule: Outline},
	},
	{
		Name:   "bottom_left_to_right",
		Path:   triangle(2, 0, 0, 2, 4, 2),
		Width:  5,
		Height: 3,
		Op:     Fill{Rule: Outline},
	},
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: Outline},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: Outline},
	},
	{
		Name:   "diamond",
		Path:   diamond(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: Outline},
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: Outline},
	},
	{
		Name:   "clipped",
		Path:   rectangle(-10, -5, 70, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: Outline},
	},
}

var evenOddCases = []TestCase{
	{
		Name:   "square_4x4",
		Path:   rectangle(1, 1, 3, 3),
		Width:  4,
		Height: 4,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "ring",
		Path:   ring(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "concave",
		Path:   polygon(8, 8, 56, 8, 56, 56, 32, 24, 8, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "clipped",
		Path:   rectangle(-10, -5, 70, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
}
