// Package registration holds the registration form core: the field snapshot,
// per-field updates, validation rules, the submit decision and the static
// country/city lookup used by the country and city selects.
//
// Everything here is synchronous and free of I/O. Renderers (HTML, terminal)
// and the navigation hand-off live in sibling packages and only consume the
// decisions made here.
package registration
