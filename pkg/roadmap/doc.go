// Package roadmap loads learning roadmaps: ordered sets of topics, each with
// a difficulty level and an optional prerequisite topic.
//
// # Input Format
//
// A roadmap file is a single object keyed by topic name:
//
//	{
//	  "Variables":    {"level": "beginner", "est_time": "2 days"},
//	  "Control Flow": {"level": "beginner", "prerequisite": "Variables"},
//	  "Concurrency":  {"level": "advanced", "prerequisite": "Control Flow"}
//	}
//
// Every field of a topic is optional. A missing level means [Beginner]; a
// level that is not one of the three known values is kept verbatim and
// styled as unrecognized downstream. The prerequisite counts only when it
// is a non-empty string. Files ending in .yaml or .yml are read with the
// same schema.
//
// # Ordering and Duplicates
//
// Topics keep the order in which they appear in the file. That order feeds
// node and edge creation and therefore only influences how the layout
// engine arranges the picture, never which nodes and edges exist.
//
// A key that appears more than once collapses into a single topic that
// keeps the position of its first occurrence and the attributes of its
// last one. The collapsed names are reported in [Roadmap.Duplicates] so
// callers can warn or refuse.
//
// # Errors
//
// [Load] returns a FILE_NOT_FOUND error when the path does not exist and a
// PARSE_ERROR when the content is not an object of objects. See
// [github.com/matzehuels/roadmap/pkg/errors].
package roadmap
