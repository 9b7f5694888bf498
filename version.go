package skilltree

// Version is the release of the planner, overridden at build time with
// -ldflags "-X github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder.Version=...".
var Version = "v0.3.0"
