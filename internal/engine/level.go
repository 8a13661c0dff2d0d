package engine

// PointsPerLevel is the width of one level tier.
const PointsPerLevel = 100

// LevelForPoints returns the coarse tier for a point total: floor(points/100)+1.
// Levels are only used for level-up notifications.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// PointsForLevel returns the point total at which the given level starts.
func PointsForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * PointsPerLevel
}
