package ghost

// TagIndex maps tag ids to tag names.
type TagIndex map[ID]string

// NewTagIndex indexes tags by id. When ids repeat, the first record wins.
func NewTagIndex(tags []Tag) TagIndex {
	index := make(TagIndex, len(tags))
	for _, tag := range tags {
		if _, seen := index[tag.ID]; !seen {
			index[tag.ID] = tag.Name
		}
	}
	return index
}

// TagIndex builds the tag index for this export.
func (e *Export) TagIndex() TagIndex {
	return NewTagIndex(e.Tags)
}

// Lookup returns the tag names linked to postID in link order, plus the ids
// of any linked tags that have no record. Duplicate links are kept.
func (idx TagIndex) Lookup(postID ID, links []PostTag) (names []string, dangling []ID) {
	for _, link := range links {
		if link.PostID != postID {
			continue
		}
		name, ok := idx[link.TagID]
		if !ok {
			dangling = append(dangling, link.TagID)
			continue
		}
		names = append(names, name)
	}
	return names, dangling
}

// Resolve returns the tag names linked to postID in link order. It fails on
// the first link whose tag does not exist.
func (idx TagIndex) Resolve(postID ID, links []PostTag) ([]string, error) {
	names, dangling := idx.Lookup(postID, links)
	if len(dangling) > 0 {
		return nil, &TagNotFoundError{PostID: postID, TagID: dangling[0]}
	}
	return names, nil
}

// ResolveTags returns the names of the tags linked to postID, in link order.
func ResolveTags(postID ID, links []PostTag, tags []Tag) ([]string, error) {
	return NewTagIndex(tags).Resolve(postID, links)
}
