/*
Package scan implements a work-efficient parallel exclusive prefix sum and
a stream compaction built on it that finds adjacent repeated elements.

The scan is the two-phase tree algorithm: an up-sweep reduces pairwise
sums towards the root of a balanced binary tree laid out in place, the
root is cleared, and a down-sweep pushes exclusive partial sums back to
the leaves. Every tree level is one device launch, one worker per touched
node, and the nodes touched at a level are pairwise disjoint. The launch
returning is the barrier before the next level. This takes O(P) total
work and O(log P) launches, where P is the logical length rounded up to a
power of two.

Buffers are plain slices whose capacity provides the padding: an
operation on N logical elements reslices its buffers to PowerOfTwoPad(N)
and therefore panics if their capacity is smaller. Elements in [N, P) are
ignored by the scan results for indices below N. Flag arrays, in
contrast, must be zero in [N, P); FlagRepeats writes those zeros itself.
*/
package scan
