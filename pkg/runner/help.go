package runner

// KeyHelp documents the commands understood by ParseIntent.
const KeyHelp = `# Keys

| Command | Effect |
|---|---|
| ` + "`+` `i` `inc`" + ` | Increment points (only while increments are allowed) |
| ` + "`t` `toggle`" + ` | Flip *Allow Increments* |
| ` + "`on` / `off`" + ` | Set *Allow Increments* |
| ` + "`?` `help`" + ` | Show this help |
| ` + "`q` `quit`" + ` | Leave |

In JSON mode send one object per line, e.g. ` + "`{\"type\":\"set_enabled\",\"value\":false}`" + `.
`
