/*
Package dedupe flags repeated content in a stream of posts.

It wraps a bloom filter (package bloom) sized for the expected number of unique
posts. Each post is reduced to one of two verdicts:

* Unique Content: the post was definitely never seen.
* Potential Duplicate: the post was possibly seen before.

A bloom filter never reports a post it has seen as unique, but it can report an
unseen post as a duplicate at roughly the configured false positive rate. Errors
therefore send unique content to review rather than letting repeats through.

Examples:

* 1mil posts at 0.1%
** Bits: 14,377,587 (1.8MB)
** Hashes: 9

* 10mil posts at 1%
** Bits: 95,850,583 (12MB)
** Hashes: 6

Memory is fixed up front. Posting more unique content than the checker was sized
for steadily raises the false positive rate, watch FillRatio and rebuild with a
larger capacity once it approaches 0.5.
*/
package dedupe
