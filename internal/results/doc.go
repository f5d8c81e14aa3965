// Package results reads and writes the session results file.
//
// Results live in a Results/ subfolder of the session's image folder, in a
// line-oriented text file named Results_File.txt. The file starts with two
// preamble lines, then carries one record per trial:
//
//	=ID             Image Name     Radial         X-Axis         Y-Axis
//	===
//	ID 0          Image Name img1.png   Radial 12.34 		 X-Axis 5.00	 Y-Axis -3.20
//	ID 1          Image Name img2.png   Radial N/A 		 X-Axis N/A	 Y-Axis N/A
//
// The header line is "=" followed by each column label padded to 15
// characters; the separator is the literal "===". Data lines interleave the
// literal column labels with values, so the parser locates values by label
// substring rather than by column offset. Measured values are written with
// exactly two decimals; a trial skipped because its image was missing
// writes "N/A" in all three measurement fields, and a trial whose implement
// fell outside the valid area writes "99999".
//
// The file is append-only: writes never rewrite existing records, and the
// preamble is written only when the file is first created. Existing files
// produced by earlier sessions accumulate further records, so the ID column
// is treated as opaque text on re-read.
package results
