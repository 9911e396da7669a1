package exposure

// BaseFilters is the filter bag. The hand picked stacks in DefaultPolicy
// depend on this order.
var BaseFilters = FilterList{
	{Stops: 10, Label: "1k"}, // ND1000
	{Stops: 6, Label: "64"},  // ND64
	{Stops: 3, Label: "8"},   // ND8
	{Stops: 2, Label: "4"},   // ND4
}

// Combinations holds every stack of BaseFilters worth a column, sorted
// by stops. Built once at package initialisation; read only afterwards.
var Combinations = DefaultPolicy.MustGenerate(BaseFilters)

// Shutters lists the camera's shutter speeds from fastest to slowest.
// This is the table row order. 1/8000 to 1/5000 are left out.
var Shutters = []Shutter{
	Fraction(4000),
	Fraction(3200),
	Fraction(2500),
	Fraction(2000),
	Fraction(1600),
	Fraction(1250),
	Fraction(1000),
	Fraction(800),
	Fraction(640),
	Fraction(500),
	Fraction(400),
	Fraction(320),
	Fraction(250),
	Fraction(200),
	Fraction(160),
	Fraction(125),
	Fraction(100),
	Fraction(80),
	Fraction(60),
	Fraction(50),
	Fraction(40),
	Fraction(30),
	Fraction(25),
	Fraction(20),
	Fraction(15),
	Fraction(13),
	Fraction(10),
	Fraction(8),
	Fraction(6),
	Fraction(5),
	Fraction(4),

	Seconds(0, 3),
	Seconds(0, 4),
	Seconds(0, 5),
	Seconds(0, 6),
	Seconds(0, 8),
	Seconds(1, 0),
	Seconds(1, 3),
	Seconds(1, 6),
	Seconds(2, 0),
	Seconds(2, 5),
	Seconds(3, 2),
	Seconds(4, 0),
	Seconds(5, 0),
	Seconds(6, 0),
	Seconds(8, 0),
	Seconds(10, 0),
	Seconds(13, 0),
	Seconds(15, 0),
	Seconds(20, 0),
	Seconds(25, 0),
	Seconds(30, 0),
}
