package usecase

// Log prefixes
const (
	LogPrefixInterpret = "internal.interpreter.usecase.Interpret"
	LogPrefixChat      = "internal.interpreter.usecase.Chat"
	LogPrefixSummarize = "internal.interpreter.usecase.Summarize"
)

// Replies used by the fallback path.
const (
	replyShowDaily  = "Here's your daily summary."
	replyShowWeekly = "Here's your weekly summary."
	replyGreeting   = "Hello! I'm FRIDAY. How can I help you today?"
	replyHelp       = `You can say things like "add task ...", "spent ... on ...", "remind me ...", "remember ..." or "show today".`
	replyGeneral    = `I'm not sure how to help with that yet. Try "add task ...", "spent ... on ..." or "remind me ...".`

	replyChatOffline = `I'm in offline mode right now, so I can't chat freely. You can still say "add task ...", "spent ... on ...", "remind me ...", "remember ..." or "show today".`
)

// Formats for dates inside replies and summaries.
const (
	replyDateLayout   = "Mon, Jan 2"
	summaryDateLayout = "Monday, January 2"
)
