/*
Package operation implements the cleanup pipeline.

	+-------------+
	|  Operation  |
	| (Pipeline)  |
	+------+------+
	       |
	+------+------+
	|  Processor  |
	| (Per File)  |
	+------+------+

🎯 Purpose:
- Orchestrates walk, detection, rewrite and report for one run
- Owns the run counters (files, statements, imports)
- Isolates per-file failures so a single bad file never aborts the run

🔄 Flow:
1. Walker gathers candidate files containing console statements
2. FileProcessor inserts the logger import and rewrites each file
3. Reporter prints per-file progress
4. A second walk verifies what remains, then the summary prints

⚡ Key Responsibilities:
- Sequential execution (strictly single-threaded, no partial-write
  rollback: interrupting the run leaves already-written files written)
- Counter bookkeeping
- Error isolation per file

📝 Design Philosophy:
Operations are small and composable; the Runner executes them in order
and stops at the first operation-level failure. File-level failures are
reported and swallowed inside the cleanup operation itself.
*/
package operation
