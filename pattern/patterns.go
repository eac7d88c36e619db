package pattern

// Builtin patterns in plain text form, usable as PlainText sources.
// Rows read top to bottom; '*' is alive, '.' is dead.
const (
	// Block is the smallest still life.
	Block = `**
**`

	// Beehive is a six-cell still life.
	Beehive = `.**.
*..*
.**.`

	// Blinker oscillates between a horizontal and a vertical bar (period 2).
	Blinker = `***`

	// Toad is a period-2 oscillator.
	Toad = `.***
***.`

	// Glider travels diagonally one cell every four generations.
	Glider = `.*.
..*
***`

	// Pulsar is a period-3 oscillator spanning a 13x13 box.
	Pulsar = `..***...***..
.............
*....*.*....*
*....*.*....*
*....*.*....*
..***...***..
.............
..***...***..
*....*.*....*
*....*.*....*
*....*.*....*
.............
..***...***..`
)

// Builtin maps pattern names accepted in configuration to their sources.
var Builtin = map[string]string{
	"block":   Block,
	"beehive": Beehive,
	"blinker": Blinker,
	"toad":    Toad,
	"glider":  Glider,
	"pulsar":  Pulsar,
}
