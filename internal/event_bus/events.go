package event_bus

// FestivalUpdated is published after any lineup mutation (priority cycle,
// contact update). The payload is the full festival.Festival snapshot after
// the mutation.
const FestivalUpdated EventType = "festival.updated"
