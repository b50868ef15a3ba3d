// export_test.go exports private functions for white-box testing.
package logger

// Unchain returns the rendered text of each link of err's chain.
func Unchain(err error) []string {
	links := unchain(err)
	texts := make([]string, len(links))
	for i, l := range links {
		texts[i] = l.String()
	}
	return texts
}

// Render lays out plain messages the way Error does.
func Render(messages []string) string {
	links := make([]link, len(messages))
	for i, msg := range messages {
		links[i] = link{text: msg}
	}
	return render(links)
}
