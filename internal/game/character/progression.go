package character

// xpThresholds[i] is the experience required to reach level i+1.
var xpThresholds = []int{
	0, 300, 900, 2700, 6500,
	14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000,
	195000, 225000, 265000, 305000, 355000,
}

// MaxLevel is the highest attainable character level.
const MaxLevel = 20

// LevelForXP returns the level earned by the given experience total.
//
// Postcondition: result is in [1, MaxLevel].
func LevelForXP(xp int) int {
	level := 1
	for i := len(xpThresholds) - 1; i >= 0; i-- {
		if xp >= xpThresholds[i] {
			level = i + 1
			break
		}
	}
	return level
}

// XPForLevel returns the experience threshold for the given level, and false
// when the level is out of range.
func XPForLevel(level int) (int, bool) {
	if level < 1 || level > MaxLevel {
		return 0, false
	}
	return xpThresholds[level-1], true
}

// XPToNextLevel returns how much experience remains until the next level, or
// 0 at the level cap.
func XPToNextLevel(xp int) int {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return 0
	}
	next, _ := XPForLevel(level + 1)
	return next - xp
}
