package respond

import (
	"fmt"
	"strings"

	"github.com/wiktorlazar/ordoai/internal/knowledge"
)

func taskResponse(lowerInput string, results []knowledge.Entry) string {
	var body string
	switch {
	case strings.Contains(lowerInput, "create") || strings.Contains(lowerInput, "make") || strings.Contains(lowerInput, "add"):
		body = "I can help you create a task list! Here's how to get started:\n\n" +
			"1. Decide on the most important tasks you need to complete\n" +
			"2. Break down large tasks into smaller, manageable steps\n" +
			"3. Prioritize your tasks based on urgency and importance\n" +
			"4. Set realistic deadlines for each task\n\n"
	case strings.Contains(lowerInput, "manage") || strings.Contains(lowerInput, "organize"):
		body = "Managing your tasks effectively is key to productivity. Here are some tips:\n\n" +
			"• Use the 1-3-5 rule: plan to accomplish 1 big thing, 3 medium things, and 5 small things each day\n" +
			"• Try time-blocking your calendar for focused work on specific tasks\n" +
			"• Review and adjust your task list at the end of each day\n" +
			"• Consider using the Eisenhower Matrix to categorize tasks by urgency and importance\n\n"
	default:
		body = "Task management is essential for staying organized and productive. Some effective methods include:\n\n" +
			"• Creating a master list of all tasks, then breaking them down by project\n" +
			"• Using the GTD (Getting Things Done) method to capture, clarify, organize, reflect, and engage\n" +
			"• Setting up a Kanban board with 'To Do', 'In Progress', and 'Done' columns\n" +
			"• Scheduling regular reviews of your task system\n\n"
	}

	body += citations("**Research findings:**", results, false)
	body += "What specific aspect of task management would you like help with?"
	return body
}

func productivityResponse(lowerInput string, results []knowledge.Entry) string {
	var body string
	switch {
	case strings.Contains(lowerInput, "improve") || strings.Contains(lowerInput, "increase") || strings.Contains(lowerInput, "boost"):
		body = "To improve your productivity, try these evidence-based strategies:\n\n" +
			"1. Use the Pomodoro Technique: work for 25 minutes, then take a 5-minute break\n" +
			"2. Eliminate distractions by turning off notifications during focused work\n" +
			"3. Practice single-tasking instead of multitasking\n" +
			"4. Start your day by completing your most important task first\n" +
			"5. Take regular breaks to maintain energy and focus throughout the day\n\n"
	case strings.Contains(lowerInput, "focus") || strings.Contains(lowerInput, "concentrate") || strings.Contains(lowerInput, "distraction"):
		body = "Improving focus in our distraction-filled world can be challenging. Here are some techniques that can help:\n\n" +
			"• Create a dedicated workspace free from distractions\n" +
			"• Use website blockers during focused work sessions\n" +
			"• Practice mindfulness meditation to train your attention muscle\n" +
			"• Use noise-cancelling headphones or background white noise\n" +
			"• Schedule specific times to check email and messages rather than responding immediately\n\n"
	default:
		body = "Becoming more productive is about working smarter, not harder. Consider these approaches:\n\n" +
			"• Identify your peak energy hours and schedule your most demanding work during those times\n" +
			"• Use the 2-minute rule: if something takes less than 2 minutes, do it immediately\n" +
			"• Batch similar tasks together to reduce context switching\n" +
			"• Take care of your physical health through sleep, exercise, and nutrition\n" +
			"• Regularly reflect on your productivity system and make adjustments as needed\n\n"
	}

	body += citations("**Latest Research Findings:**", results, true)
	return body
}

func goalResponse(lowerInput string, results []knowledge.Entry) string {
	var body string
	switch {
	case strings.Contains(lowerInput, "set") || strings.Contains(lowerInput, "create"):
		body = "Setting effective goals is crucial for success. Try using the SMART framework:\n\n" +
			"• Specific: Clearly define what you want to accomplish\n" +
			"• Measurable: Include concrete criteria to measure progress\n" +
			"• Achievable: Make sure the goal is realistic given your resources\n" +
			"• Relevant: Align with your broader objectives and values\n" +
			"• Time-bound: Set a deadline to create urgency and focus\n\n"
	case strings.Contains(lowerInput, "achieve") || strings.Contains(lowerInput, "accomplish"):
		body = "To achieve your goals more effectively:\n\n" +
			"1. Break them down into smaller, manageable milestones\n" +
			"2. Create a specific action plan with next steps\n" +
			"3. Build in accountability through sharing goals or finding an accountability partner\n" +
			"4. Track your progress regularly and celebrate small wins\n" +
			"5. Anticipate obstacles and plan how you'll overcome them\n\n"
	default:
		body = "Goal setting is powerful because it provides direction and purpose. For best results:\n\n" +
			"• Focus on a few important goals rather than many\n" +
			"• Write your goals down and review them regularly\n" +
			"• Connect your goals to your deeper values and purpose\n" +
			"• Balance short-term and long-term goals\n" +
			"• Be willing to adjust your approach if something isn't working\n\n"
	}

	body += citations("**Research findings:**", results, false)
	return body
}

// citations renders knowledge results as quoted attributions under a bold
// header, optionally with each entry's date.
func citations(header string, results []knowledge.Entry, withDates bool) string {
	if len(results) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(header + "\n\n")
	for _, r := range results {
		dateInfo := ""
		if withDates && r.Date != "" {
			dateInfo = fmt.Sprintf(" (%s)", r.Date)
		}
		fmt.Fprintf(&b, "According to %s%s: %q\n\n", r.Source, dateInfo, r.Content)
	}
	return b.String()
}
