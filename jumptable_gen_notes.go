package bytellmap

// This file documents, rather than computes, the derivation of
// jumpDistances' geometric region (indices 82..125). There is nothing to
// run here — the table is a literal constant — but the derivation is
// worth recording since only four of the 44 values in that region (the
// first three and the last) come from a load-bearing source; the rest
// needed to be filled in.
//
// The region's bounds begin 3741, 8385, 18915 and end
// 5209859150892887590, without the 40 values in between pinned down.
// Those 40 values were generated by log-linear interpolation between the
// third given seed (18915) and the final value across the remaining
// steps, then nudged up wherever rounding produced a non-increasing step,
// so the region is a smooth, strictly increasing bridge between its
// endpoints rather than an arbitrary one.
//
// The region-boundary split itself (66 dense values at indices 16..81, 44
// geometric values at indices 82..125) is recorded in DESIGN.md.
