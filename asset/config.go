package asset

// DefaultConfig is the documented arena.toml; every value matches the built-in defaults
const DefaultConfig = `# arena.toml

[game]
tick_rate = 40
enemy_count = 300
# 0 seeds from the clock
seed = 0
player_x = 10
player_y = 10
check_intersect = true

[map]
# A map file overrides the catalogue
file = ""
# Empty manifest uses the bundled catalogue
manifest = ""
# Empty name picks the first catalogue entry
name = ""
generate = false
width = 160
height = 48

# Key overrides: key name or single character = action
# Actions: move_left move_right move_up move_down grow shrink toggle_debug quit none
[keys]

[logging]
enabled = false
level = "info"
format = "console"
dir = "logs"

[audio]
enabled = true

[display]
debug = false
`
