/*
Package rewrite swaps the Google Tag Manager container id in an HTML file
and injects a brand data layer script ahead of the tag manager snippet.

	+-----------+     +--------------+     +--------------+     +-----------+
	|   read    | --> |  substitute  | --> |    insert    | --> |   write   |
	|  (file)   |     | (token swap) |     | (data layer) |     | (atomic)  |
	+-----------+     +--------------+     +--------------+     +-----------+

🔄 Flow:
 1. The whole file is read into memory.
 2. Every occurrence of the source token becomes the target token.
 3. The first "<head>" followed only by whitespace and the marker comment
    gets the data layer script between the two.
 4. The result replaces the file through a temp file and a rename, so the
    original is never truncated before the new content exists.

A missing token or a missing anchor is not an error. Each step is a no-op
on its own when its pattern is absent.

🔍 Example:

	res, err := rewrite.Rewrite(ctx, "index.html", "Acme")
	if err != nil {
		var ferr *rewrite.FileAccessError
		if errors.As(err, &ferr) {
			// missing, unreadable or unwritable file
		}
		return err
	}
	fmt.Println(res.Replacements, res.Inserted)
*/
package rewrite
