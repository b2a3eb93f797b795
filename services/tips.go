package services

import "time"

// defaultTips is served by the tip of the day. Order matters, and so do the
// repeats: the day-of-month index is taken over the full list.
var defaultTips = []string{
	// Getting Started
	"The best project you’ll ever work on is you.",
	"Small steps, big changes.",
	"Your health is an investment, not an expense.",
	"The only bad workout is the one that didn’t happen.",
	"Start where you are. Use what you have. Do what you can. – Arthur Ashe",
	"The difference between try and triumph is a little umph.",
	"Your body hears everything your mind says.",
	"Don’t wait until you’ve reached your goal to be proud of yourself. Be proud of every step you take.",
	"Motivation is what gets you started. Habit is what keeps you going.",
	"The expert in anything was once a beginner.",
	"You don’t have to be great to start, but you have to start to be great.",
	"A journey of a thousand miles begins with a single step. – Lao Tzu",
	"The hardest lift of all is lifting your butt off the couch.",
	"Today I will do what others won’t, so tomorrow I can do what others can’t.",
	"Your future self is watching you right now through memories.",
	"The only way to do great things is to love what you do. – Steve Jobs",
	"Every action you take is a vote for the person you wish to become.",
	"The clock is ticking. Are you becoming the person you want to be?",
	// Overcoming Obstacles
	"Fall seven times, stand up eight. – Japanese Proverb",
	"Your body can stand almost anything. It’s your mind you have to convince.",
	"Don’t stop when you’re tired. Stop when you’re done.",
	"Pain is temporary. Quitting lasts forever.",
	"The only disability in life is a bad attitude. – Scott Hamilton",
	"Strength doesn’t come from what you can do. It comes from overcoming the things you once thought you couldn’t.",
	"When you feel like quitting, remember why you started.",
	"The struggle you’re in today is developing the strength you need for tomorrow.",
	"It’s not about perfect. It’s about effort.",
	"Obstacles don’t have to stop you. If you run into a wall, don’t turn around and give up. Figure out how to climb it, go through it, or work around it. – Michael Jordan",
	"What hurts today makes you stronger tomorrow.",
	"The pain you feel today will be the strength you feel tomorrow.",
	"Challenges are what make life interesting. Overcoming them is what makes life meaningful. – Joshua J. Marine",
	"You may encounter many defeats, but you must not be defeated. – Maya Angelou",
	"The greatest glory in living lies not in never falling, but in rising every time we fall. – Nelson Mandela",
	"Tough times don’t last. Tough people do.",
	"Your biggest challenge isn’t someone else. It’s the voice in your head.",
	"Don’t wish it were easier. Wish you were better.",
	// Consistency and Routine
	"Consistency is harder when no one is clapping for you. You must clap for yourself.",
	"We are what we repeatedly do. Excellence, then, is not an act, but a habit. – Aristotle",
	"Small disciplines repeated with consistency every day lead to great achievements gained slowly over time. – John C. Maxwell",
	"Success isn’t always about greatness. It’s about consistency.",
	"It’s not what we do once in a while that shapes our lives. It’s what we do consistently.",
	"The secret of your future is hidden in your daily routine.",
	"Motivation gets you going, but discipline keeps you growing.",
	"Discipline is choosing between what you want now and what you want most.",
	"Daily practices, not occasional efforts, bring lasting change.",
	"Consistency beats intensity every time.",
	"Don’t expect to see a change if you don’t make one.",
	"A year from now, you’ll wish you had started today.",
	"Habits form character, and character forms destiny.",
	"The difference between who you are and who you want to be is what you do.",
	"Show up even on the days you don’t feel like it.",
	"Consistency is the true foundation of trust.",
	"Small consistent efforts lead to big consistent results.",
	"What you do every day matters more than what you do once in a while.",
	// Nutrition and Eating Right
	"Let food be thy medicine and medicine be thy food. – Hippocrates",
	"You are what you eat, so don’t be fast, cheap, easy, or fake.",
	"The food you eat can be either the safest and most powerful form of medicine or the slowest form of poison.",
	"Eat for the body you want, not for the body you have.",
	"Your diet is a bank account. Good food choices are good investments.",
	"If you keep good food in your fridge, you will eat good food.",
	"Take care of your body. It’s the only place you have to live. – Jim Rohn",
	"The first wealth is health. – Ralph Waldo Emerson",
	"Don’t dig your grave with your own knife and fork.",
	"Healthy eating isn’t about counting calories, it’s about counting chemicals.",
	"Eat to nourish your body, not just to feed your hunger.",
	"Every time you eat is an opportunity to nourish your body.",
	"The greatest wealth is health. – Virgil",
	"Your body is a temple, but only if you treat it as one.",
	"Processed foods are like one-night stands. They seem good at the time but leave you feeling lousy the next day.",
	"A healthy outside starts from the inside.",
	"An apple a day keeps the doctor away, but a healthy diet keeps the medicines away.",
	"Nutrition is not about eating more or eating less. It’s about eating right.",
	// Fitness and Exercise
	"Exercise is king. Nutrition is queen. Put them together and you’ve got a kingdom. – Jack LaLanne",
	"The only bad workout is the one that didn’t happen.",
	"Fitness is not about being better than someone else. It’s about being better than you used to be.",
	"No matter how slow you go, you’re still lapping everyone on the couch.",
	"Sweat is just fat crying.",
	"Your health is your wealth.",
	"The body achieves what the mind believes.",
	"Exercise is a celebration of what your body can do, not a punishment for what you ate.",
	"You don’t have to be extreme, just consistent.",
	"The pain of discipline weighs ounces, while the pain of regret weighs tons.",
	"Strong is the new beautiful.",
	"Train like a beast, look like a beauty.",
	"The only place where success comes before work is in the dictionary.",
	"Sore today, strong tomorrow.",
	"You can feel sore tomorrow or sorry tomorrow. You choose.",
	"Fitness is like marriage. You can’t cheat on it and expect it to work.",
	"Your body keeps an accurate journal regardless of what you write down.",
	"The hardest thing about exercise is to start doing it. Once you’re doing it regularly, the hardest thing is to stop it.",
	// Mental Well-being
	"Self-care is not selfish. You cannot serve from an empty vessel. – Eleanor Brown",
	"Mental health is not a destination, but a process.",
	"Your mind will quit a thousand times before your body will.",
	"Happiness is the highest form of health. – Dalai Lama",
	"Almost everything will work again if you unplug it for a few minutes, including you.",
	"You can’t pour from an empty cup. Take care of yourself first.",
	"The mind is like a parachute. It works best when it’s open.",
	"Breathe. Let go. And remind yourself that this very moment is the only one you know you have for sure.",
	"Your mental health is a priority. Your happiness is essential. Your self-care is a necessity.",
	"Peace is the result of retraining your mind to process life as it is, rather than as you think it should be.",
	"Rest when you’re weary. Refresh and renew yourself, your body, your mind, your spirit.",
	"Calm mind brings inner strength and self-confidence.",
	"The greatest weapon against stress is our ability to choose one thought over another.",
	"Meditation is not about stopping thoughts, but recognizing that we are more than our thoughts and our feelings.",
	"Sleep is the golden chain that ties health and our bodies together.",
	"Sometimes the most productive thing you can do is relax.",
	"Worry less, smile more.",
	"Mental strength is like a muscle – the more you train it, the stronger it gets.",
	// Humorous and Fun
	"I’m on a seafood diet. I see food and I eat it… just kidding!",
	"My doctor told me to start my exercise program gradually. So today I drove past a gym.",
	"I’m not sweating, I’m sparkling.",
	"Of course I’m an organ donor. Who wouldn’t want this body?",
	"I’m not lazy, I’m on energy-saving mode.",
	"I run because I really like food.",
	"My fitness goal is to get down to what I told people I weigh.",
	"I’m into fitness… fitness whole pizza in my mouth.",
	"The only running I do is running late.",
	"I’m not going to the gym today. Record it as ‘rest’ instead of ‘lazy.'",
	"My favorite exercise is a cross between a lunge and a crunch… I call it lunch.",
	"I’m allergic to mornings.",
	"I work out because I know I would’ve made a hot dinosaur.",
	"I’m not saying I’m Wonder Woman, I’m just saying no one has ever seen me and Wonder Woman in the same room.",
	"Stressed spelled backward is desserts. Coincidence? I think not!",
	"I’m on a 30-day diet. So far I’ve lost 15 days.",
	"Exercise? I thought you said ‘extra fries’!",
	"Life is short. Smile while you still have teeth.",
}

// DefaultTips returns a copy of the built-in tip list.
func DefaultTips() []string {
	return append([]string(nil), defaultTips...)
}

// TipOfTheDay picks tips[day-of-month % len(tips)]. It returns "" for an empty list.
func TipOfTheDay(t time.Time, tips []string) string {
	if len(tips) == 0 {
		return ""
	}
	return tips[t.Day()%len(tips)]
}
