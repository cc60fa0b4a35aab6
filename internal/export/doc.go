// Package export renders Ghost posts as Jekyll post files.
//
// Each eligible post becomes one file named after its publication date and
// slug:
//
//	_posts/2014-03-05-hello-world.md
//
// # Post Format
//
// The file starts with a YAML front matter block in a fixed key order,
// followed directly by the post body:
//
//	---
//	layout: post
//	title: 'Hello'
//	date: 2014-03-05 10:00:00
//	tags:
//	- 'intro'
//	image: /content/images/hello.png
//	---
//	```ruby
//	puts "hi"
//	```
//
// The tags block appears only when the post has at least one tag and the
// image line only when the post has an image. Single quotes inside titles
// and tag names are doubled, so the header is always valid YAML.
//
// # Body Rewriting
//
// Ghost marks fenced code languages as "lang-X". RewriteCodeFences turns
// every ```lang-X into ```X and leaves the rest of the body untouched.
//
// # Migration
//
// A Migrator walks the posts of an export in order:
//
//	migrator := export.NewMigrator(export.Options{OutputDir: "_posts"}, printer)
//	result, err := migrator.Run(exp)
//
// Pages are skipped, as are drafts when Options.SkipDrafts is set. Tag links
// to unknown tags abort the run unless Options.MissingTags is
// MissingTagsSkip, in which case they are dropped with a warning. The first
// error stops the run; files already written are left in place.
package export
