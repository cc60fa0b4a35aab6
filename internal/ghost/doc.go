// Package ghost reads Ghost blog exports and resolves post tags.
//
// A Ghost export is a single JSON document:
//
//	{
//	  "db": [
//	    {
//	      "meta": {"exported_on": 1394013600000, "version": "003"},
//	      "data": {
//	        "posts":      [{"id": 1, "title": "Hello", "slug": "hello-world", ...}],
//	        "tags":       [{"id": 5, "name": "intro"}],
//	        "posts_tags": [{"post_id": 1, "tag_id": 5}]
//	      }
//	    }
//	  ]
//	}
//
// Only the first element of db is read. Load and Decode return an *Export
// holding the three collections; a missing db, data, posts, tags or
// posts_tags key is reported as a *MissingFieldError.
//
// # Export Versions
//
// Ghost 0.x exports use numeric ids, 0/1 page flags and epoch-millisecond
// timestamps. Later versions use string object ids, booleans and RFC 3339
// strings. ID, Flag and Timestamp accept both shapes.
//
// # Tags
//
// Tags are attached to posts through posts_tags. ResolveTags (or
// TagIndex.Resolve when resolving many posts) returns tag names in the order
// their links appear; a link to an unknown tag is a *TagNotFoundError.
package ghost
