package field

// NicknameProvider expands a canonical given name into alternate given
// forms ("WILLIAM" -> "BILL", "WILL"). It is a capability interface:
// the engine runs with nil by default, and a provider can only ADD
// NAME_NICK_FAMILY variants, never change the core catalogue, so
// determinism of the base variant set is structurally protected.
//
// Returned values are canonicalized by the caller; providers do not
// need to pre-normalize.
type NicknameProvider interface {
	Nicknames(given string) []string
}

// StaticNicknames is a fixed lookup-table provider. Keys and values are
// expected in canonical form, but values are re-canonicalized on use.
type StaticNicknames map[string][]string

// Nicknames implements NicknameProvider.
func (m StaticNicknames) Nicknames(given string) []string {
	return m[given]
}
