package asset

// DefaultLevel is the crash site the run is played on
// '#' is a wall tile, '.' is open ground
const DefaultLevel = `
#########################
#.......................#
#.......................#
#...##..........##......#
#...##..........##......#
#.......................#
#.......................#
#..........###..........#
#..........###..........#
#.......................#
#.......................#
#...##..........##......#
#...##..........##......#
#.......................#
#.......................#
#.......................#
#.......................#
#.......................#
#########################
`
