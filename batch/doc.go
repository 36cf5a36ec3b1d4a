// Package batch evaluates rational trigonometry formulas over many triangles.
//
// Triangles are read from JSON Lines: each line holds either the three
// vertices or the three side quadrances, with every scalar written as a
// string so exact rationals such as "1/3" survive the round trip.
//
//	{"id":"t1","points":[["0","0"],["3","0"],["0","4"]]}
//	{"id":"t2","quadrances":["5","25","20"]}
//
// For each triangle the evaluator emits the side quadrances, the quadrea
// (Archimedes' formula), the spread opposite each side (law of spreads) and a
// collinearity flag. Rows are evaluated concurrently and written back in
// input order. Files ending in .zst or .lz4 are transparently decompressed on
// read and compressed on write.
//
// # Usage
//
//	ev := batch.New(numeric.ParseRat, batch.WithWorkers(8))
//	report, err := ev.RunFile(ctx, "triangles.jsonl.zst", "results.jsonl")
//
// A division by zero inside one row (a zero-length side with an exact number
// type) is recorded on that row and in Report.Failed; it does not stop the
// batch. Malformed input does.
package batch
