// Package form models the rendered admin form the tab UI operates on.
//
// A Form is an ordered list of field groups, each representing one logical
// section of the record being edited. Translated sections carry an explicit
// language tag; untranslated sections carry none. The tab controller buckets
// tagged groups by language, re-parents their content under language panels
// and hides the original groups in place. Groups are never removed, so the
// form's submission order and field identities stay intact.
//
// The record kinds and their translated field sets mirror the GoGevgelija
// content models: listings, events, promotions, blog posts and categories.
package form
