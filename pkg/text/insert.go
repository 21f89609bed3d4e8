// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"regexp"
	"strings"
)

// 📝 dataLayerTemplate is the script pushed ahead of the tag manager
// marker. The space after the closing quote is part of the output.
const dataLayerTemplate = `<script>
    window.dataLayer = window.dataLayer || [];
    dataLayer.push({
        'brandName': '{brand}' 
    });
</script>

`

// 🎯 DataLayerSnippet renders the data layer script for brand.
//
// The brand is substituted verbatim. A brand containing a single quote
// produces a broken script literal; callers that care must check first.
func DataLayerSnippet(brand string) string {
	return strings.Replace(dataLayerTemplate, "{brand}", brand, 1)
}

// anchorSpace is whitespace in the Unicode sense. RE2's \s is ASCII only
// and misses \v, the \x1c-\x1f separators, NEL and \p{Z} (NBSP etc).
const anchorSpace = `[\s\v\x1c-\x1f\x{85}\p{Z}]`

// 🔍 HeadAnchor matches an opening head tag, any whitespace after it, and
// then marker, as two adjacent capture groups.
func HeadAnchor(marker string) *regexp.Regexp {
	return regexp.MustCompile(`(<head>` + anchorSpace + `*)(` + regexp.QuoteMeta(marker) + `)`)
}

// 🔄 Insert places rule.Snippet between the two groups of the first anchor
// match. Content without a match is returned as is.
func Insert(content string, rule InsertionRule) (string, bool) {
	if rule.Anchor == nil {
		return content, false
	}

	loc := rule.Anchor.FindStringSubmatchIndex(content)
	if len(loc) < 4 || loc[3] < 0 {
		return content, false
	}

	// end of the first group is the insertion point
	at := loc[3]

	var b strings.Builder
	b.Grow(len(content) + len(rule.Snippet))
	b.WriteString(content[:at])
	b.WriteString(rule.Snippet)
	b.WriteString(content[at:])
	return b.String(), true
}
