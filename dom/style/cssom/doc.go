/*
Package cssom provides functionality for CSS styling.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
This package computes the placement-relevant styles of nodes in a host document
from the stylesheets embedded in the document (<style> elements), the user-agent
defaults of package style and the specificity of selectors.
There is not very much open source Go code around for supporting us
in implementing a styling engine, except the great work of
https://godoc.org/github.com/andybalholm/cascadia, which we use for
selector matching.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in sub-packages
(see package douceuradapter).

This is not a browser's styling engine: there is no inheritance, no media
queries and no pseudo-classes depending on user interaction.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'onscreen.dom'.
func tracer() tracing.Trace {
	return tracing.Select("onscreen.dom")
}
