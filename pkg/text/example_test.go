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

package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/gtmrc/pkg/text"
)

func ExampleSimpleTextReplacer_ReplaceText() {
	replacer := text.NewSimpleTextReplacer()

	rules := []text.ReplacementRule{
		{FromText: "GTM-5VC7HCPG", ToText: "GTM-KRWMRCGX"},
	}

	content := strings.NewReader("<script>GTM-5VC7HCPG</script><noscript>GTM-5VC7HCPG</noscript>")

	result, err := replacer.ReplaceText(context.Background(), content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: <script>GTM-KRWMRCGX</script><noscript>GTM-KRWMRCGX</noscript>
	// Changes: 2
	// Was Modified: true
}

func ExampleSimpleTextReplacer_ValidateRules() {
	replacer := text.NewSimpleTextReplacer()

	rules := []text.ReplacementRule{
		{FromText: "foo", ToText: "bar"},
		{ToText: "qux"}, // missing FromText
	}

	err := replacer.ValidateRules(rules)
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 1: from_text is required
}

func ExampleInsert() {
	rule := text.InsertionRule{
		Anchor:  text.HeadAnchor("<!-- Google Tag Manager -->"),
		Snippet: text.DataLayerSnippet("Acme"),
	}

	out, inserted := text.Insert("<head>\n<!-- Google Tag Manager -->\n", rule)
	fmt.Println(inserted)
	fmt.Println(strings.Index(out, "<script>") < strings.Index(out, "<!-- Google Tag Manager -->"))
	fmt.Println(strings.Count(out, "'brandName': 'Acme'"))

	// Output:
	// true
	// true
	// 1
}
