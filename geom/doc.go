/*
Package geom decides whether an element's box counts as being on screen.

Overview

Every check works on three boxes: the visible rectangle of the container (either the
window's viewport or a scrollable element clipped to the viewport), a tolerance box
which pushes the detection boundary outwards, and the bounding rectangle of the
element under test. All rectangles are in viewport coordinates, i.e. relative to the
top-left corner of the window's visible area, as a browser's getBoundingClientRect
would report them.

Functions of this package are pure and may be called at any frequency.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package geom
