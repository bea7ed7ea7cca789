/*
Package style holds raw CSS property values for the nodes of a host document.

Values are kept in their textual form (type Property) and grouped by topic. Clients
interpret them through the option types of package css, e.g. lengths through
css.DimenT and positioning schemes through css.PositionT.

Only properties relevant for placing boxes are given a group; everything else ends
up in group "X" and is kept verbatim. There is no inheritance: none of the placement
properties cascades.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'onscreen.dom'
func tracer() tracing.Trace {
	return tracing.Select("onscreen.dom")
}
