package discord

// Friendly message constants for Discord responses
const (
	MsgAlreadyRegistered = "🗡️ **Already Registered**\nYou already have a weapon. Try `/weapon`."
	MsgNotRegistered     = "👤 **No Weapon Yet**\nUse `/register` to claim one."
	MsgForgeBusy         = "🔥 **The Forge Is Busy**\nSomeone is already working on that weapon. Try again in a moment."
	MsgConnectionError   = "Error connecting to the forge."
	MsgGenericError      = "❌ Something went wrong."

	MsgWeaponGlows   = "Your weapon glows!"
	MsgPong          = "Pong! 🏓 The forge is lit."
	MsgPongForgeDown = "Pong! 🏓 The forge is cold right now."
)
