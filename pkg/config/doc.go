/*
Package config loads optional overrides for the container swap.

	            +-------------+
	            |   Config    |
	            |  (tokens)   |
	            +------+------+
	                   |
	      +------------+-----------+
	      |            |           |
	+-----+----+ +-----+----+ +----+-----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

The parser is picked by file extension. Every field is optional; blank
fields fall back to the rewrite defaults, and the merged result must
pass rewrite.Options.Validate.

🔍 Example (.gtmrc.yaml):

	source_token: GTM-5VC7HCPG
	target_token: GTM-KRWMRCGX
	marker: "<!-- Google Tag Manager -->"

The same in HCL:

	source_token = "GTM-5VC7HCPG"
	target_token = "GTM-KRWMRCGX"
	marker       = default_marker
*/
package config
