/*
Package segment renders prompt format templates into ordered, styled segments.

# Templates

A template mixes literal text with placeholders:

	via ${symbol}${version:style=bold 147}

A placeholder is "${" name [":" modifier {"," modifier}] "}". A modifier is
either a key=value pair or a bare flag:

	${version:major}
	${path:style=bold cyan,short}

"$$" produces a literal "$". A "$" that does not start a placeholder is kept
as literal text.

# Resolution

FormatSegments parses the whole template before resolving anything, so a
malformed template never reaches the resolver. Each placeholder occurrence is
then handed to the Resolver in template order. A resolver reports "no value"
by returning false, which drops that placeholder from the output without
failing the render:

	segs, err := segment.FormatSegments("${version}${unknown}", "", segment.Resolvers{
	    "version": segment.Static("v7.3.8"),
	}.Resolve)
	// segs: [{Name: "version", Value: "v7.3.8"}]

# Styles

Styles are opaque descriptor strings; the empty Style means "not set". The
style of a resolved segment is chosen in this order:

  - the Style set by the resolver on the returned Segment
  - the "style=" modifier of the placeholder
  - the default style passed to FormatSegments
  - unstyled

Literal text runs are emitted as segments named TextName with no style.
*/
package segment
