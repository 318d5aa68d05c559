package bytellmap

// jumpDistances is the fixed jump-distance table (JDT): 126 probe offsets
// indexed by a slot's 7-bit jump index. Index 0 means "no successor" and
// is never used as a probe step; jumpDistances[0] == 0 anchors that.
//
// The table has three regions:
//
//   - indices 0..15:  unit offsets, keeping short chains inside one or two
//     cell groups for cache locality.
//   - indices 16..81: a dense "triangular-plus" region (66 values) that
//     spreads contention across the table.
//   - indices 82..125: a geometric escape region (44 values) that
//     guarantees a probe reaches an empty slot within 126 attempts short
//     of a genuinely full table.
//
// See jumptable_gen_notes.go for how the geometric region's interior
// values were derived; the first three and the last value are
// load-bearing, the rest are a smooth, strictly increasing bridge
// between them.
var jumpDistances = [126]uint64{
	// indices 0..15
	0, 1, 2, 3, 4, 5, 6, 7,
	8, 9, 10, 11, 12, 13, 14, 15,

	// indices 16..81: dense triangular-plus region
	21, 28, 36, 45, 55, 66, 78, 91,
	105, 120, 136, 153, 171, 190, 210, 231,
	253, 276, 300, 325, 351, 378, 406, 435,
	465, 496, 528, 561, 595, 630, 666, 703,
	741, 780, 820, 861, 903, 946, 990, 1035,
	1081, 1128, 1176, 1225, 1275, 1326, 1378, 1431,
	1485, 1540, 1596, 1653, 1711, 1770, 1830, 1891,
	1953, 2016, 2080, 2145, 2211, 2278, 2346, 2415,
	2485, 2556,

	// indices 82..125: geometric escape region
	3741, 8385, 18915, 42560,
	95763, 215473, 484829, 1090899,
	2454596, 5523006, 12427139, 27961905,
	62916181, 141565672, 318532358, 716719395,
	1612667219, 3628610551, 8164619689, 18370947701,
	41335877520, 93008526188, 209275488089, 470884033000,
	1059520991011, 2383994044651, 5364148188805, 12069697009531,
	27157636361708, 61106522572386, 137493817619354, 309370409045126,
	696104389636760, 1566282058995781, 3524240796142984, 7929780666173038,
	17842543983495878, 40146933339661424, 90333321194001344, 203256095525411648,
	457339991734729664, 1029045980142685952, 2315423204586128384, 5209859150892887590,
}

// maxJumpIndex is the highest valid jump index; probing for an empty slot
// during insertion tries indices 1..=maxJumpIndex before forcing growth.
const maxJumpIndex = len(jumpDistances) - 1
