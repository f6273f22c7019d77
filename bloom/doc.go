/*
Package bloom contains a fixed capacity bloom filter for string items.

The filter is sized from the number of items expected and the target false
positive probability:

	m = -(n * ln p) / (ln 2)^2
	k = (m / n) * ln 2

Both values are truncated towards zero (not rounded) and then floored at 1.

Each item is hashed k times, once per seed in 0..k-1, and the bit at each
resulting position is set. A lookup that finds any of those bits clear means the
item was definitely never added. A lookup that finds all of them set means the
item was possibly added.

Examples:

* 1k items at 1%
** Bits: 9,585 (1.2KB)
** Hashes: 6

* 1mil items at 0.1%
** Bits: 14,377,587 (1.8MB)
** Hashes: 9

Bits are never cleared. Once the number of items added exceeds the capacity the
filter was sized for, the false positive rate climbs and the filter should be
replaced with a larger one.

Filter is not safe for concurrent writers. Use SyncFilter when items are added
from more than one goroutine.
*/
package bloom
