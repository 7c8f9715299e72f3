package components

import "github.com/yohamta/donburi/ecs"

// LayerDefault holds every entity and renderer. Renderers draw in the
// order they were added.
const LayerDefault ecs.LayerID = 0
