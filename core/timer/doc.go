// Package timer measures how long a piece of work takes.
//
//	var t timer.Timer
//	t.Start()
//	runImport()
//	t.End()
//	fmt.Println(t.DurationInSeconds()) // 0.251034
//
// Track wraps the same measurement in a deferred call that writes the result
// to the global zap logger:
//
//	defer timer.Track("import")()
package timer
