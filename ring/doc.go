/*
Package ring provides the fixed-capacity circular storage used for the blocks of
a bdeque.

A ring never reallocates. Its capacity is set at construction time and logical
index i is mapped to physical slot (start+i) mod capacity. Rotating the ring
moves the logical origin by one slot in O(1), which lets a block grow or shrink
at its front without moving any stored element.

Clients outside of package bdeque will rarely need this package; it is exported
to keep all modulo arithmetic in one place.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ring
