package exporthtml_test

import (
	"fmt"
	"log"

	exporthtml "github.com/sugarshin/draft-js-export-html"
	"github.com/sugarshin/draft-js-export-html/contentstate"
)

func ExampleRender() {
	raw := []byte(`{
		"blocks": [
			{
				"key": "a1",
				"type": "unstyled",
				"text": "Hello World",
				"inlineStyleRanges": [{"offset": 6, "length": 5, "style": "BOLD"}],
				"entityRanges": []
			}
		],
		"entityMap": {}
	}`)

	content, err := contentstate.FromRaw(raw)
	if err != nil {
		log.Fatal(err)
	}
	html, err := exporthtml.Render(content)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(html)
	// Output: <p>Hello <strong>World</strong></p>
}

func ExampleExporter_Render() {
	content := contentstate.New([]contentstate.Block{
		{
			Key:  "a1",
			Type: contentstate.CheckableListItem,
			Text: "ship it",
		},
	}, nil)

	exporter := exporthtml.New()
	html, err := exporter.Render(content, contentstate.CheckedState{"a1": true})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(html)
	// Output:
	// <ul>
	//   <li><input type="checkbox" checked/>ship it</li>
	// </ul>
}
