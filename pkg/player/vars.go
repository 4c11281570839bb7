package player

import "time"

type SeedGeneratorFnType func() uint64

var SeedGeneratorFn SeedGeneratorFnType = func() uint64 {
	return uint64(time.Now().UnixNano())
}

// Set custom seed generator function for the random players,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
