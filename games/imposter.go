package games

// Players gather in a room identified by a short PIN, which the host shares out of band
// The first player to use a PIN becomes the host of that room
// Each round, the server picks a sports league and a season, then two different names from that season
// Every player is privately shown the same name, except one player chosen at random, who sees the other
// Players take turns asking each other questions about "their" athlete
// The goal is to work out who was dealt the odd name without giving your own away
// The host deals the next round whenever the group is ready

// Implementation details:
// - One websocket endpoint for all rooms; the PIN rides in each message
// - Rooms are ephemeral: created on first join, gone when the last player leaves
// - If the host drops, the longest-standing remaining player takes over
// - Rooms hold at most 10 players

// How to play
// - One player opens the game page and shares the PIN (or the QR code) with the group
// - Everyone enters the PIN to join; the lobby shows a live player count
// - The host presses "Start Game" once everyone is in
// - Discuss, vote, accuse; the host presses "Next Round" to deal again
