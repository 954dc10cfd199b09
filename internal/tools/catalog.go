package tools

import (
	"fmt"
	"time"

	"github.com/strrl/socialgen/internal/ai"
)

const jsonListOnly = "Strictly return ONLY a valid JSON array of strings."

func catalog() []Tool {
	var all []Tool
	all = append(all, instagramTools()...)
	all = append(all, sharedTools()...)
	all = append(all, twitterTools()...)
	return all
}

func instagramTools() []Tool {
	return []Tool{
		{
			ID:       "bio",
			Platform: PlatformInstagram,
			Display:  Display{Title: "Bio Creator", Description: "Craft the perfect bio", Icon: "wand", SubmitLabel: "Generate Bios"},
			Handler:  HandlerBio,
			Format:   FormatCards,
			Fields: []Field{
				{Name: "name", Label: "Handle", Kind: KindText, Placeholder: "username"},
				{Name: "description", Label: "Vibe & Description", Kind: KindTextarea, Placeholder: "Travel photographer, minimalism...", Required: true},
				{Name: "region", Label: "Region", Kind: KindText, Placeholder: "City/State"},
				{Name: "tone", Label: "Tone", Kind: KindSelect, Options: toneOptions(), Required: true},
				{Name: "keywords", Label: "Keywords", Kind: KindText, Placeholder: "tech, art..."},
				{Name: "cta", Label: "Call to Action", Kind: KindText, Placeholder: "Shop below"},
				{Name: "emojis", Label: "Include Emojis", Kind: KindSelect, Options: []string{"Yes", "No"}},
			},
			System:      "You are a world-class social media copywriter. You MUST return a strictly valid JSON array of objects. Each object must have 'content' and 'style' keys.",
			Model:       ai.RoleCreative,
			Temperature: 0.8,
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Create exactly 6 distinct Instagram bio variations based on:
Name: %s
Description: %s
Region: %s
Tone: %s
Keywords: %s
CTA: %s
Emojis: %s

Constraints:
- Keep under 150 chars.
- No markdown formatting in the output, just raw JSON.
- Be creative, human, and non-robotic.

Example output format:
[{"content": "Bio text here", "style": "Minimalist"}, {"content": "Another bio", "style": "Funny"}]`,
					v.Get("name"), v.Get("description"), v.Get("region"), v.Get("tone"),
					v.Get("keywords"), v.Get("cta"), v.GetOr("emojis", "No"))
			},
		},
		{
			ID:       "analyzer",
			Platform: PlatformInstagram,
			Display:  Display{Title: "Profile Analyzer", Description: "Judge your persona", Icon: "scan-search", SubmitLabel: "Analyze Me"},
			Handler:  HandlerAnalyzer,
			Fields: []Field{
				{Name: "name", Label: "Name", Kind: KindText, Placeholder: "Name", Required: true},
				{Name: "age", Label: "Age", Kind: KindText, Placeholder: "e.g. 28"},
				{Name: "occupation", Label: "Occupation", Kind: KindText, Placeholder: "e.g. UX Designer at a Startup"},
				{Name: "traits", Label: "Key Traits (Comma separated)", Kind: KindText, Placeholder: "e.g. Anxious, Ambitious, Caffeine-addicted"},
				{Name: "hobbies", Label: "Hobbies & Interests", Kind: KindTextarea, Placeholder: "e.g. Pottery, Hiking, Binge-watching reality TV"},
				{Name: "socialMediaStyle", Label: "Social Media Behavior", Kind: KindText, Placeholder: "e.g. Posts cryptic stories, lurker, influencer wannabe"},
				{Name: "worstHabit", Label: "Worst Habit / Pet Peeve", Kind: KindText, Placeholder: "e.g. Chewing loudly, interrupting people"},
			},
			System:      "You are a witty cultural critic and internet personality.",
			Model:       ai.RoleSmart,
			Temperature: 0.8,
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Roast this person playfully based on their profile:
Name: %s, Age: %s, Job: %s
Traits: %s, Hobbies: %s
Social Style: %s, Worst Habit: %s

Keep it punchy, around 6 lines. Be witty, fun, and slightly judgmental (in a friendly way).
Do not include any thinking chain or internal monologue, just the final roast.`,
					v.Get("name"), v.Get("age"), v.Get("occupation"),
					v.Get("traits"), v.Get("hobbies"),
					v.Get("socialMediaStyle"), v.Get("worstHabit"))
			},
		},
		{
			ID:       "roast",
			Platform: PlatformInstagram,
			Display:  Display{Title: "Roast My Feed", Description: "Visual vibe check", Icon: "flame", SubmitLabel: "Roast Me"},
			Handler:  HandlerImageRoast,
			Fields: []Field{
				{Name: "image", Label: "Feed Screenshot", Kind: KindImage, Required: true},
			},
			System:      "You are an elite aesthetic critic. Roast this feed brutally but playfully.",
			Model:       ai.RoleVision,
			Temperature: 0.7,
			Build: func(Values, time.Time) string {
				return "Roast this Instagram feed screenshot. 6 lines max. Give a 'Vibe Rating' / 10 at the end."
			},
		},
		{
			ID:           "audio",
			Platform:     PlatformInstagram,
			Display:      Display{Title: "Trending Audio", Description: "Viral sounds & story lyrics", Icon: "disc", SubmitLabel: "Find Audio"},
			UseGrounding: true,
			Fields: []Field{
				{Name: "vibe", Label: "Vibe / Niche", Kind: KindText, Placeholder: "e.g. Late Night Drives, Gym, Office Life", Required: true},
				{Name: "format", Label: "Content Format", Kind: KindSelect, Options: []string{"Reels Trend", "Story Background", "Photo Dump", "Vlog"}, Required: true},
			},
			Build: func(v Values, now time.Time) string {
				return fmt.Sprintf(`Context: Today is %s.
Using Google Search, find the current Spotify Top 50 Global chart and trending Instagram Reels audio for this week.
Suggest 5 songs that match the "%s" vibe for a %s.
CRITICAL: Use emojis liberally. For each song provide: Title/Artist, Why it fits, and a Story Lyric.`,
					now.Format("1/2/2006"), v.Get("vibe"), v.Get("format"))
			},
		},
		{
			ID:       "caption",
			Platform: PlatformInstagram,
			Display:  Display{Title: "Caption Writer", Description: "Engaging captions", Icon: "message-square", SubmitLabel: "Write Captions"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "context", Label: "What is in the photo/video?", Kind: KindTextarea, Placeholder: "e.g. Sunset at the beach with coffee", Required: true},
				{Name: "tone", Label: "Vibe", Kind: KindSelect, Options: []string{"Aesthetic", "Funny", "Short", "Inspirational", "Savage"}, Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Write exactly 3 playful Instagram caption options for a photo about: "%s". Tone: %s. %s`,
					v.Get("context"), v.Get("tone"), jsonListOnly)
			},
		},
		{
			ID:       "lyrics",
			Platform: PlatformInstagram,
			Display:  Display{Title: "Lyric Finder", Description: "Find song snippets", Icon: "music", SubmitLabel: "Get Lyrics"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "song", Label: "Song / Audio Name", Kind: KindText, Placeholder: "e.g. Espresso by Sabrina Carpenter", Required: true},
				{Name: "mood", Label: "Caption Style", Kind: KindSelect, Options: []string{"Story Overlay", "Aesthetic Lowercase", "Shoutout", "Emotional", "Hype"}, Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Identify the most viral/trending lyrics snippet from the song/audio "%s". Provide exactly 3 different caption variations using this snippet in a "%s" style. %s`,
					v.Get("song"), v.Get("mood"), jsonListOnly)
			},
		},
		{
			ID:       "rizz",
			Platform: PlatformInstagram,
			Display:  Display{Title: "Rizz Replier", Description: "Smooth DMs & comments", Icon: "sparkles", SubmitLabel: "Generate Rizz"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "message", Label: "Message to reply to", Kind: KindTextarea, Placeholder: `e.g. "Did it hurt when you fell from heaven?"`, Required: true},
				{Name: "tone", Label: "Intent", Kind: KindSelect, Options: []string{"Flirty", "Funny", "Mean/Roast", "Polite rejection", "Playful"}, Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Write exactly 3 witty replies to the message: "%s". Intent: %s.

%s
Example: ["Reply 1", "Reply 2", "Reply 3"]
Do not include any markdown formatting or extra text.`, v.Get("message"), v.Get("tone"), jsonListOnly)
			},
		},
		{
			ID:       "story",
			Platform: PlatformInstagram,
			Display:  Display{Title: "Story Ideas", Description: "Engage your followers", Icon: "aperture", SubmitLabel: "Get Ideas"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "context", Label: "What are you doing today?", Kind: KindText, Placeholder: "e.g. Working from home", Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Give exactly 3 interactive Instagram Story ideas based on: "%s". %s`, v.Get("context"), jsonListOnly)
			},
		},
		{
			ID:       "hashtag",
			Platform: PlatformInstagram,
			Display:  Display{Title: "Hashtag Curator", Description: "Niche stacks for reach", Icon: "hash", SubmitLabel: "Curate Tags"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "topic", Label: "Post Topic", Kind: KindText, Placeholder: "e.g. Street Photography in Tokyo", Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Generate exactly 3 distinct sets of hashtags for: "%s". Return them as 3 strings. %s`, v.Get("topic"), jsonListOnly)
			},
		},
		{
			ID:       "highlight",
			Platform: PlatformInstagram,
			Display:  Display{Title: "Highlight Planner", Description: "Organize your profile", Icon: "layout-grid", SubmitLabel: "Plan Highlights"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "niche", Label: "Account Type", Kind: KindText, Placeholder: "e.g. Lifestyle Influencer", Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Suggest exactly 3 Instagram Highlight category names (with emoji) for a "%s" account. %s`, v.Get("niche"), jsonListOnly)
			},
		},
	}
}

func sharedTools() []Tool {
	return []Tool{
		{
			ID:       "translator",
			Platform: PlatformBoth,
			Display:  Display{Title: "Slang Translator", Description: "Boomer to Gen Z", Icon: "languages", SubmitLabel: "Translate"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "text", Label: "Normal Text", Kind: KindTextarea, Placeholder: "e.g. I am very tired today.", Required: true},
				{Name: "style", Label: "Translate into...", Kind: KindSelect, Options: []string{"Gen Z / Brainrot", "Corporate Speak", "Old Money / Polished", "Medieval", "Pirate", "Tech Bro"}, Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Translate "%s" into %s style. Provide exactly 3 distinct variations. %s`, v.Get("text"), v.Get("style"), jsonListOnly)
			},
		},
		{
			ID:       "calendar",
			Platform: PlatformBoth,
			Display:  Display{Title: "Content Calendar", Description: "Plan your next viral week", Icon: "calendar", SubmitLabel: "Plan 3 Days"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "niche", Label: "Niche / Topic", Kind: KindText, Placeholder: "e.g. Vegan Cooking", Required: true},
				{Name: "goal", Label: "Main Goal", Kind: KindSelect, Options: []string{"Growth", "Sales", "Engagement", "Authority"}, Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Create a playful 3-Day Mini Content Plan for "%s" (Goal: %s). Provide 3 concise daily plans (one string per day). %s`,
					v.Get("niche"), v.Get("goal"), jsonListOnly)
			},
		},
		{
			ID:       "username",
			Platform: PlatformBoth,
			Display:  Display{Title: "Handle Generator", Description: "Aesthetic usernames", Icon: "at-sign", SubmitLabel: "Find Handles"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "name", Label: "Name or Word", Kind: KindText, Placeholder: "e.g. Sarah", Required: true},
				{Name: "vibe", Label: "Style", Kind: KindSelect, Options: []string{"Minimalist (sarah.jpg)", "Y2K (xoxo_sarah)", "Professional", "Clever", "Crypto / Tech"}, Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Generate exactly 3 available-sounding instagram/twitter username options based on "%s" with a "%s" aesthetic. %s`,
					v.Get("name"), v.Get("vibe"), jsonListOnly)
			},
		},
		{
			ID:       "font",
			Platform: PlatformBoth,
			Display:  Display{Title: "Aesthetic Fonts", Description: "Stylize your text", Icon: "type", SubmitLabel: "Stylize"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "text", Label: "Text to Stylize", Kind: KindText, Placeholder: "e.g. Link in Bio", Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Rewrite "%s" in exactly 3 different aesthetic unicode font styles. %s`, v.Get("text"), jsonListOnly)
			},
		},
	}
}

func twitterTools() []Tool {
	return []Tool{
		{
			ID:       "twitter-bio",
			Platform: PlatformTwitter,
			Display:  Display{Title: "X Bio Architect", Description: "High authority bios (160ch)", Icon: "user-check", SubmitLabel: "Build Bios"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "role", Label: "Who are you?", Kind: KindText, Placeholder: "e.g. Founder of a SaaS, Crypto Trader", Required: true},
				{Name: "proof", Label: "Social Proof / Credibility", Kind: KindText, Placeholder: "e.g. Built 3 startups, $1M ARR", Required: true},
				{Name: "style", Label: "Style", Kind: KindSelect, Options: []string{"Authority/Serious", "Shitposter", "Minimalist", "Mysterious"}, Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Create 3 distinct Twitter bios for a "%s". Include this proof: "%s". Style: %s. Constraints: Under 160 chars, credible, maybe one link placeholder. %s`,
					v.Get("role"), v.Get("proof"), v.Get("style"), jsonListOnly)
			},
		},
		{
			ID:       "thread",
			Platform: PlatformTwitter,
			Display:  Display{Title: "Thread Maker", Description: "Turn ideas into viral threads", Icon: "repeat", SubmitLabel: "Draft Thread"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "topic", Label: "Thread Topic", Kind: KindTextarea, Placeholder: "e.g. How to start dropshipping in 2025", Required: true},
				{Name: "style", Label: "Writing Style", Kind: KindSelect, Options: []string{"Storytelling", "Actionable List", "Contrarian", "Analytical"}, Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Write the outline of a viral Twitter thread about "%s". Style: %s. Return exactly 3 items: 1) The Hook Tweet 2) The Body/Value Prop Summary 3) The CTA/Closing Tweet. %s`,
					v.Get("topic"), v.Get("style"), jsonListOnly)
			},
		},
		{
			ID:       "hook",
			Platform: PlatformTwitter,
			Display:  Display{Title: "Viral Hooks", Description: "Stop the scroll instantly", Icon: "zap", SubmitLabel: "Generate Hooks"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "topic", Label: "Topic", Kind: KindText, Placeholder: "e.g. AI is changing coding", Required: true},
				{Name: "type", Label: "Hook Type", Kind: KindSelect, Options: []string{"Negative/Fear", "How-To", "Listicle", "Personal Story", "Contrarian"}, Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Write 5 viral Twitter hooks about "%s". Style: %s. They must be punchy, short, and clickbaity but honest. %s`,
					v.Get("topic"), v.Get("type"), jsonListOnly)
			},
		},
		{
			ID:       "reply-guy",
			Platform: PlatformTwitter,
			Display:  Display{Title: "Reply Guy", Description: "Farm engagement on big accs", Icon: "message-square", SubmitLabel: "Generate Replies"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "tweet", Label: "Tweet you are replying to", Kind: KindTextarea, Placeholder: "Paste the original tweet here...", Required: true},
				{Name: "vibe", Label: "Strategy", Kind: KindSelect, Options: []string{"Disagree/Debate", "Funny/Meme", "Add Value/Insight", "Supportive"}, Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Write 3 replies to this tweet: "%s". Strategy: %s. Goal: Get likes and visibility. %s`,
					v.Get("tweet"), v.Get("vibe"), jsonListOnly)
			},
		},
		{
			ID:       "hottake",
			Platform: PlatformTwitter,
			Display:  Display{Title: "Hot Take Gen", Description: "Controversial engagement bait", Icon: "alert-triangle", SubmitLabel: "Spit Fire"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "industry", Label: "Industry / Topic", Kind: KindText, Placeholder: "e.g. Remote Work, Bitcoin, Modern Dating", Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Generate 3 controversial "Hot Takes" or unpopular opinions about "%s". The goal is to trigger people to comment. %s`,
					v.Get("industry"), jsonListOnly)
			},
		},
		{
			ID:       "rewrite-x",
			Platform: PlatformTwitter,
			Display:  Display{Title: "LinkedIn to X", Description: "Corporate to punchy text", Icon: "refresh-cw", SubmitLabel: "Rewrite"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "text", Label: "Boring Text / LinkedIn Post", Kind: KindTextarea, Placeholder: "Paste long text here...", Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Rewrite this text into a punchy, viral Twitter style (short sentences, line breaks, no fluff): "%s". Provide 3 variations. %s`,
					v.Get("text"), jsonListOnly)
			},
		},
		{
			ID:       "audit-x",
			Platform: PlatformTwitter,
			Display:  Display{Title: "Profile Auditor", Description: "Check your personal brand", Icon: "scan-search", SubmitLabel: "Audit Me"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "handle", Label: "Handle", Kind: KindText, Placeholder: "@elonmusk", Required: true},
				{Name: "bio", Label: "Current Bio", Kind: KindTextarea, Placeholder: "Paste current bio...", Required: true},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Act as a branding expert. Roast/Audit this Twitter profile. Handle: %s, Bio: "%s". Provide 3 distinct pieces of brutal feedback on how to improve authority and followers. %s`,
					v.Get("handle"), v.Get("bio"), jsonListOnly)
			},
		},
		{
			ID:       "shitpost",
			Platform: PlatformTwitter,
			Display:  Display{Title: "Shitpost Gen", Description: "Low effort, high viral potential", Icon: "bomb", SubmitLabel: "Generate Garbage"},
			Format:   FormatList,
			Fields: []Field{
				{Name: "topic", Label: "Topic (Optional)", Kind: KindText, Placeholder: "e.g. Developers, Crypto, Gym"},
			},
			Build: func(v Values, _ time.Time) string {
				return fmt.Sprintf(`Generate 3 funny, low-effort, "shitpost" style tweets about %s. Lowercase, bad grammar allowed, unhinged vibe. %s`,
					v.GetOr("topic", "general life"), jsonListOnly)
			},
		},
	}
}
