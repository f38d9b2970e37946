// Package tabs implements language-tab navigation over a multilingual form.
//
// The controller scans a form for language-tagged field groups, buckets them
// by language, and builds one tab header and one content panel per language
// that actually has groups on the page. Group content is re-parented under
// its panel while the original group is hidden in place, so the form's
// submission order and field identities survive intact.
//
// Exactly one header and one panel are active at a time once the tab strip
// is built. The last-chosen language is persisted through an injectable
// Store, read back on the next Initialize, and replaced by the configured
// default when the persisted code has no tab on the current form.
//
// Everything here degrades silently: a form without tagged groups leaves the
// controller inert, an unknown language tag drops the group from every
// panel, and switching to an unknown code deactivates all tabs without
// raising an error. Diagnostics go to the debug log only.
package tabs
