package ui

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"humanTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return humanize.Time(t)
	},
	"statusColor": func(status string) string {
		switch strings.ToUpper(status) {
		case "ACTIVE", "PASS":
			return "bg-green-100 text-green-800"
		case "UPCOMING":
			return "bg-yellow-100 text-yellow-800"
		case "COMPLETED":
			return "bg-gray-100 text-gray-800"
		case "FAIL":
			return "bg-red-100 text-red-800"
		default:
			return "bg-gray-100 text-gray-800"
		}
	},
	"roleBadge": func(role string) string {
		if strings.EqualFold(role, "ADMIN") {
			return "bg-purple-100 text-purple-800"
		}
		return "bg-blue-100 text-blue-800"
	},
	"percent": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	},
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"add": func(a, b int) int {
		return a + b
	},
	"urlquery": func(s string) string {
		return template.URLQueryEscaper(s)
	},
}

// renderTemplate renders a template with the given data.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	if _, err = tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    {{if .Session}}
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 flex justify-between h-14 items-center">
            <div class="flex items-center space-x-6">
                <span class="font-semibold text-indigo-700">ExamDesk</span>
                {{if .Session.IsAdmin}}
                <a href="/admin" class="text-sm text-gray-600 hover:text-gray-900">Dashboard</a>
                <a href="/admin/exams" class="text-sm text-gray-600 hover:text-gray-900">Exams</a>
                <a href="/admin/questions" class="text-sm text-gray-600 hover:text-gray-900">Questions</a>
                <a href="/admin/subjects" class="text-sm text-gray-600 hover:text-gray-900">Subjects</a>
                <a href="/admin/users" class="text-sm text-gray-600 hover:text-gray-900">Users</a>
                <a href="/admin/results" class="text-sm text-gray-600 hover:text-gray-900">Results</a>
                {{else}}
                <a href="/student" class="text-sm text-gray-600 hover:text-gray-900">My Exams</a>
                <a href="/student/results" class="text-sm text-gray-600 hover:text-gray-900">My Results</a>
                {{end}}
            </div>
            <div class="flex items-center space-x-4">
                <span class="text-sm text-gray-500">{{.Session.User.Name}}</span>
                <a href="/logout" class="text-sm text-red-600 hover:text-red-800">Logout</a>
            </div>
        </div>
    </nav>
    {{end}}
    <main class="max-w-7xl mx-auto px-4 py-8">
        {{if .Error}}
        <div class="mb-4 rounded bg-red-50 border border-red-200 px-4 py-3 text-sm text-red-700">{{.Error}}</div>
        {{end}}
        {{template "content" .}}
    </main>
</body>
</html>`,

	"home": `<div class="max-w-md mx-auto mt-16 text-center">
    <h1 class="text-3xl font-bold text-indigo-700 mb-2">ExamDesk</h1>
    <p class="text-gray-500 mb-8">Online examination platform</p>
    <div class="space-y-3">
        <a href="/student/login" class="block w-full rounded bg-indigo-600 text-white py-2 hover:bg-indigo-700">Student Login</a>
        <a href="/student/signup" class="block w-full rounded border border-indigo-600 text-indigo-600 py-2 hover:bg-indigo-50">Student Sign Up</a>
        <a href="/admin/login" class="block w-full rounded border border-gray-300 text-gray-700 py-2 hover:bg-gray-100">Admin Login</a>
    </div>
</div>`,

	"login": `<div class="max-w-sm mx-auto mt-16 bg-white rounded shadow p-6">
    <h1 class="text-xl font-semibold mb-4">{{if eq (printf "%s" .Role) "ADMIN"}}Admin{{else}}Student{{end}} Login</h1>
    <form method="post">
        <label class="block text-sm text-gray-600 mb-1">Email</label>
        <input name="email" type="email" required class="w-full border rounded px-3 py-2 mb-3">
        <label class="block text-sm text-gray-600 mb-1">Password</label>
        <input name="password" type="password" required class="w-full border rounded px-3 py-2 mb-4">
        <button type="submit" class="w-full rounded bg-indigo-600 text-white py-2 hover:bg-indigo-700">Login</button>
    </form>
    <p class="mt-4 text-sm text-gray-500"><a href="/" class="text-indigo-600">Back</a></p>
</div>`,

	"signup": `<div class="max-w-sm mx-auto mt-16 bg-white rounded shadow p-6">
    <h1 class="text-xl font-semibold mb-4">Student Sign Up</h1>
    <form method="post">
        <label class="block text-sm text-gray-600 mb-1">Name</label>
        <input name="name" required class="w-full border rounded px-3 py-2 mb-3">
        <label class="block text-sm text-gray-600 mb-1">Email</label>
        <input name="email" type="email" required class="w-full border rounded px-3 py-2 mb-3">
        <label class="block text-sm text-gray-600 mb-1">Password</label>
        <input name="password" type="password" required class="w-full border rounded px-3 py-2 mb-4">
        <button type="submit" class="w-full rounded bg-indigo-600 text-white py-2 hover:bg-indigo-700">Create Account</button>
    </form>
    <p class="mt-4 text-sm text-gray-500">Already registered? <a href="/student/login" class="text-indigo-600">Login</a></p>
</div>`,

	"error": `<div class="max-w-md mx-auto mt-16 text-center">
    <h1 class="text-2xl font-semibold text-gray-800 mb-2">Something went wrong</h1>
    <p class="text-gray-500 mb-6">{{.Message}}</p>
    <a href="/" class="text-indigo-600">Back to start</a>
</div>`,

	"student/dashboard": `<div class="flex justify-between items-center mb-6">
    <h1 class="text-2xl font-semibold">My Exams</h1>
    <div class="flex space-x-3 text-sm">
        <span class="rounded px-2 py-1 bg-yellow-100 text-yellow-800">Upcoming: {{index .Stats "Upcoming"}}</span>
        <span class="rounded px-2 py-1 bg-green-100 text-green-800">Active: {{index .Stats "Active"}}</span>
        <span class="rounded px-2 py-1 bg-gray-100 text-gray-800">Completed: {{index .Stats "Completed"}}</span>
    </div>
</div>
<div class="grid md:grid-cols-2 gap-4">
    {{range .Exams}}
    <div class="bg-white rounded shadow p-4">
        <div class="flex justify-between items-start">
            <h2 class="font-semibold">{{.Title}}</h2>
            <span class="text-xs rounded px-2 py-1 {{statusColor (printf "%s" .Status)}}">{{.Status}}</span>
        </div>
        <p class="text-sm text-gray-500 mt-1">{{truncate .Description 120}}</p>
        <dl class="mt-3 text-sm text-gray-600 grid grid-cols-2 gap-1">
            <dt>Subject</dt><dd>{{.SubjectName}}</dd>
            <dt>Duration</dt><dd>{{.DurationMinutes}} min</dd>
            <dt>Marks</dt><dd>{{.TotalMarks}} (pass {{.PassMarks}})</dd>
            <dt>Starts</dt><dd>{{humanTime .StartTime}}</dd>
        </dl>
        {{if eq (printf "%s" .Status) "active"}}
        <a href="/student/exams/{{.ID}}" class="mt-3 inline-block rounded bg-indigo-600 text-white px-4 py-1.5 text-sm hover:bg-indigo-700">Take Exam</a>
        {{end}}
    </div>
    {{else}}
    <p class="text-gray-500">No exams available.</p>
    {{end}}
</div>`,

	"student/exam": `<div class="max-w-3xl mx-auto">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold">{{.Exam.Title}}</h1>
        <span class="text-sm text-gray-600">{{.RemainingMinutes}} min remaining</span>
    </div>
    <form method="post" action="/student/exams/{{.Exam.ID}}/submit">
        {{$answers := .Answers}}
        {{range $i, $q := .Exam.Questions}}
        <div class="bg-white rounded shadow p-4 mb-4">
            <p class="font-medium mb-3">{{add $i 1}}. {{$q.QuestionText}} <span class="text-xs text-gray-400">({{$q.Marks}} marks)</span></p>
            {{$saved := index $answers (printf "%d" $q.ID)}}
            {{range $q.Options}}
            <label class="block text-sm mb-1">
                <input type="radio" name="q_{{$q.ID}}" value="{{.}}" {{if eq $saved .}}checked{{end}} class="mr-2">{{.}}
            </label>
            {{end}}
        </div>
        {{end}}
        <div class="flex space-x-3">
            <button type="submit" formaction="/student/exams/{{.Exam.ID}}/answers" class="rounded border border-gray-300 px-4 py-2 text-sm hover:bg-gray-100">Save Progress</button>
            <button type="submit" class="rounded bg-indigo-600 text-white px-4 py-2 text-sm hover:bg-indigo-700">Submit Exam</button>
        </div>
    </form>
</div>`,

	"student/result": `<div class="max-w-md mx-auto mt-8 bg-white rounded shadow p-6 text-center">
    <span class="inline-block rounded px-3 py-1 text-sm {{statusColor (printf "%s" .Result.Status)}}">{{.Result.Status}}</span>
    <p class="text-4xl font-bold mt-4">{{.Result.Score}} / {{.Result.TotalMarks}}</p>
    <p class="text-gray-500 mt-1">{{percent .Result.Percentage}}</p>
    <p class="text-sm text-gray-400 mt-2">Completed in {{.Result.TimeTakenMinutes}} minutes</p>
    <a href="/student/results" class="mt-6 inline-block text-indigo-600">All results</a>
</div>`,

	"student/results": `<h1 class="text-2xl font-semibold mb-6">My Results</h1>
<div class="bg-white rounded shadow overflow-hidden">
    <table class="min-w-full text-sm">
        <thead class="bg-gray-50 text-left text-gray-500">
            <tr><th class="px-4 py-2">Exam</th><th class="px-4 py-2">Score</th><th class="px-4 py-2">Percentage</th><th class="px-4 py-2">Status</th><th class="px-4 py-2">Submitted</th></tr>
        </thead>
        <tbody class="divide-y">
            {{range .Results}}
            <tr>
                <td class="px-4 py-2">{{if .Exam}}{{.Exam.Title}}{{else}}-{{end}}</td>
                <td class="px-4 py-2">{{.Score}} / {{.TotalMarks}}</td>
                <td class="px-4 py-2">{{percent .Percentage}}</td>
                <td class="px-4 py-2"><span class="rounded px-2 py-0.5 text-xs {{statusColor (printf "%s" .Status)}}">{{.Status}}</span></td>
                <td class="px-4 py-2">{{humanTime .SubmittedAt}}</td>
            </tr>
            {{else}}
            <tr><td colspan="5" class="px-4 py-6 text-center text-gray-500">No results yet.</td></tr>
            {{end}}
        </tbody>
    </table>
</div>`,

	"admin/dashboard": `<h1 class="text-2xl font-semibold mb-6">Dashboard</h1>
<div class="grid grid-cols-2 md:grid-cols-4 gap-4 mb-8">
    <div class="bg-white rounded shadow p-4"><p class="text-sm text-gray-500">Users</p><p class="text-2xl font-bold">{{.Summary.TotalUsers}}</p></div>
    <div class="bg-white rounded shadow p-4"><p class="text-sm text-gray-500">Exams</p><p class="text-2xl font-bold">{{.Summary.TotalExams}}</p></div>
    <div class="bg-white rounded shadow p-4"><p class="text-sm text-gray-500">Questions</p><p class="text-2xl font-bold">{{.Summary.TotalQuestions}}</p></div>
    <div class="bg-white rounded shadow p-4"><p class="text-sm text-gray-500">Subjects</p><p class="text-2xl font-bold">{{.Summary.TotalSubjects}}</p></div>
</div>
<h2 class="text-lg font-semibold mb-3">Recent Results</h2>
<div class="bg-white rounded shadow overflow-hidden">
    <table class="min-w-full text-sm">
        <thead class="bg-gray-50 text-left text-gray-500">
            <tr><th class="px-4 py-2">Student</th><th class="px-4 py-2">Exam</th><th class="px-4 py-2">Score</th><th class="px-4 py-2">Status</th><th class="px-4 py-2">Submitted</th></tr>
        </thead>
        <tbody class="divide-y">
            {{range .Summary.RecentResults}}
            <tr>
                <td class="px-4 py-2">{{if .User}}{{.User.Name}}{{else}}-{{end}}</td>
                <td class="px-4 py-2">{{if .Exam}}{{.Exam.Title}}{{else}}-{{end}}</td>
                <td class="px-4 py-2">{{.Score}} / {{.TotalMarks}}</td>
                <td class="px-4 py-2"><span class="rounded px-2 py-0.5 text-xs {{statusColor (printf "%s" .Status)}}">{{.Status}}</span></td>
                <td class="px-4 py-2">{{humanTime .SubmittedAt}}</td>
            </tr>
            {{else}}
            <tr><td colspan="5" class="px-4 py-6 text-center text-gray-500">No results yet.</td></tr>
            {{end}}
        </tbody>
    </table>
</div>`,

	"admin/exams": `<h1 class="text-2xl font-semibold mb-6">Exams</h1>
<div class="bg-white rounded shadow p-4 mb-6">
    <form method="post" action="/admin/exams" class="grid md:grid-cols-3 gap-3 text-sm">
        <input type="hidden" name="id" value="{{.EditID}}">
        <input name="title" placeholder="Title" required class="border rounded px-3 py-2">
        <input name="description" placeholder="Description" class="border rounded px-3 py-2">
        <select name="subjectId" class="border rounded px-3 py-2">
            {{range .Subjects}}<option value="{{.ID}}">{{.Name}}</option>{{end}}
        </select>
        <input name="durationMinutes" type="number" placeholder="Duration (min)" class="border rounded px-3 py-2">
        <input name="totalMarks" type="number" placeholder="Total marks" class="border rounded px-3 py-2">
        <input name="passMarks" type="number" placeholder="Pass marks" class="border rounded px-3 py-2">
        <input name="totalQuestions" type="number" placeholder="Questions" class="border rounded px-3 py-2">
        <select name="level" class="border rounded px-3 py-2">
            <option value="EASY">Easy</option><option value="MEDIUM">Medium</option><option value="HARD">Hard</option>
        </select>
        <span></span>
        <input name="startTime" type="datetime-local" class="border rounded px-3 py-2">
        <input name="endTime" type="datetime-local" class="border rounded px-3 py-2">
        <button type="submit" class="rounded bg-indigo-600 text-white px-4 py-2 hover:bg-indigo-700">Save Exam</button>
    </form>
</div>
<div class="bg-white rounded shadow overflow-hidden">
    <table class="min-w-full text-sm">
        <thead class="bg-gray-50 text-left text-gray-500">
            <tr><th class="px-4 py-2">Title</th><th class="px-4 py-2">Subject</th><th class="px-4 py-2">Window</th><th class="px-4 py-2">Marks</th><th class="px-4 py-2">Status</th><th class="px-4 py-2"></th></tr>
        </thead>
        <tbody class="divide-y">
            {{range .Exams}}
            <tr>
                <td class="px-4 py-2">{{.Title}}</td>
                <td class="px-4 py-2">{{.SubjectName}}</td>
                <td class="px-4 py-2">{{formatTime .StartTime}} &ndash; {{formatTime .EndTime}}</td>
                <td class="px-4 py-2">{{.TotalMarks}} (pass {{.PassMarks}})</td>
                <td class="px-4 py-2"><span class="rounded px-2 py-0.5 text-xs {{statusColor (printf "%s" .Status)}}">{{.Status}}</span></td>
                <td class="px-4 py-2 text-right space-x-2">
                    <a href="/admin/exams/{{.ID}}/results" class="text-indigo-600">Results</a>
                    <form method="post" action="/admin/exams/{{.ID}}/delete" class="inline">
                        <button type="submit" class="text-red-600">Delete</button>
                    </form>
                </td>
            </tr>
            {{else}}
            <tr><td colspan="6" class="px-4 py-6 text-center text-gray-500">No exams yet.</td></tr>
            {{end}}
        </tbody>
    </table>
</div>`,

	"admin/exam_results": `<h1 class="text-2xl font-semibold mb-6">Exam Results</h1>
<div class="bg-white rounded shadow overflow-hidden">
    <table class="min-w-full text-sm">
        <thead class="bg-gray-50 text-left text-gray-500">
            <tr><th class="px-4 py-2">Student</th><th class="px-4 py-2">Score</th><th class="px-4 py-2">Percentage</th><th class="px-4 py-2">Status</th><th class="px-4 py-2">Time Taken</th><th class="px-4 py-2">Submitted</th></tr>
        </thead>
        <tbody class="divide-y">
            {{range .Results}}
            <tr>
                <td class="px-4 py-2">{{if .User}}{{.User.Name}}{{else}}-{{end}}</td>
                <td class="px-4 py-2">{{.Score}} / {{.TotalMarks}}</td>
                <td class="px-4 py-2">{{percent .Percentage}}</td>
                <td class="px-4 py-2"><span class="rounded px-2 py-0.5 text-xs {{statusColor (printf "%s" .Status)}}">{{.Status}}</span></td>
                <td class="px-4 py-2">{{.TimeTakenMinutes}} min</td>
                <td class="px-4 py-2">{{humanTime .SubmittedAt}}</td>
            </tr>
            {{else}}
            <tr><td colspan="6" class="px-4 py-6 text-center text-gray-500">No submissions yet.</td></tr>
            {{end}}
        </tbody>
    </table>
</div>
<p class="mt-4"><a href="/admin/exams" class="text-indigo-600">Back to exams</a></p>`,

	"admin/questions": `<h1 class="text-2xl font-semibold mb-6">Questions</h1>
<div class="bg-white rounded shadow p-4 mb-6">
    <form method="post" action="/admin/questions" class="grid md:grid-cols-2 gap-3 text-sm">
        <input type="hidden" name="id" value="{{.EditID}}">
        <input name="questionText" placeholder="Question text" required class="border rounded px-3 py-2 md:col-span-2">
        <input name="optionOne" placeholder="Option 1" class="border rounded px-3 py-2">
        <input name="optionTwo" placeholder="Option 2" class="border rounded px-3 py-2">
        <input name="optionThree" placeholder="Option 3" class="border rounded px-3 py-2">
        <input name="optionFour" placeholder="Option 4" class="border rounded px-3 py-2">
        <input name="correctAnswer" placeholder="Correct answer" class="border rounded px-3 py-2">
        <input name="marks" type="number" placeholder="Marks" class="border rounded px-3 py-2">
        <select name="examId" class="border rounded px-3 py-2">
            {{range .Exams}}<option value="{{.ID}}">{{.Title}}</option>{{end}}
        </select>
        <select name="subjectId" class="border rounded px-3 py-2">
            {{range .Subjects}}<option value="{{.ID}}">{{.Name}}</option>{{end}}
        </select>
        <button type="submit" class="rounded bg-indigo-600 text-white px-4 py-2 hover:bg-indigo-700">Save Question</button>
    </form>
</div>
<div class="bg-white rounded shadow overflow-hidden">
    <table class="min-w-full text-sm">
        <thead class="bg-gray-50 text-left text-gray-500">
            <tr><th class="px-4 py-2">Question</th><th class="px-4 py-2">Marks</th><th class="px-4 py-2">Exam</th><th class="px-4 py-2"></th></tr>
        </thead>
        <tbody class="divide-y">
            {{range .Questions}}
            <tr>
                <td class="px-4 py-2">{{truncate .QuestionText 80}}</td>
                <td class="px-4 py-2">{{.Marks}}</td>
                <td class="px-4 py-2">{{.ExamID}}</td>
                <td class="px-4 py-2 text-right">
                    <form method="post" action="/admin/questions/{{.ID}}/delete" class="inline">
                        <button type="submit" class="text-red-600">Delete</button>
                    </form>
                </td>
            </tr>
            {{else}}
            <tr><td colspan="4" class="px-4 py-6 text-center text-gray-500">No questions yet.</td></tr>
            {{end}}
        </tbody>
    </table>
</div>`,

	"admin/subjects": `<h1 class="text-2xl font-semibold mb-6">Subjects</h1>
<div class="bg-white rounded shadow p-4 mb-6">
    <form method="post" action="/admin/subjects" class="flex gap-3 text-sm">
        <input type="hidden" name="id" value="{{.EditID}}">
        <input name="name" placeholder="Name" required class="border rounded px-3 py-2 flex-1">
        <input name="description" placeholder="Description" class="border rounded px-3 py-2 flex-1">
        <button type="submit" class="rounded bg-indigo-600 text-white px-4 py-2 hover:bg-indigo-700">Save Subject</button>
    </form>
</div>
<div class="bg-white rounded shadow overflow-hidden">
    <table class="min-w-full text-sm">
        <thead class="bg-gray-50 text-left text-gray-500">
            <tr><th class="px-4 py-2">Name</th><th class="px-4 py-2">Description</th><th class="px-4 py-2"></th></tr>
        </thead>
        <tbody class="divide-y">
            {{range .Subjects}}
            <tr>
                <td class="px-4 py-2">{{.Name}}</td>
                <td class="px-4 py-2">{{.Description}}</td>
                <td class="px-4 py-2 text-right">
                    <form method="post" action="/admin/subjects/{{.ID}}/delete" class="inline">
                        <button type="submit" class="text-red-600">Delete</button>
                    </form>
                </td>
            </tr>
            {{else}}
            <tr><td colspan="3" class="px-4 py-6 text-center text-gray-500">No subjects yet.</td></tr>
            {{end}}
        </tbody>
    </table>
</div>`,

	"admin/users": `<h1 class="text-2xl font-semibold mb-6">Users</h1>
<div class="bg-white rounded shadow p-4 mb-6">
    <form method="post" action="/admin/users" class="grid md:grid-cols-5 gap-3 text-sm">
        <input type="hidden" name="id" value="{{.EditID}}">
        <input name="name" placeholder="Name" required class="border rounded px-3 py-2">
        <input name="email" type="email" placeholder="Email" required class="border rounded px-3 py-2">
        <input name="password" type="password" placeholder="Password" class="border rounded px-3 py-2">
        <select name="role" class="border rounded px-3 py-2">
            <option value="STUDENT">Student</option><option value="ADMIN">Admin</option>
        </select>
        <button type="submit" class="rounded bg-indigo-600 text-white px-4 py-2 hover:bg-indigo-700">Save User</button>
    </form>
</div>
<div class="bg-white rounded shadow overflow-hidden">
    <table class="min-w-full text-sm">
        <thead class="bg-gray-50 text-left text-gray-500">
            <tr><th class="px-4 py-2">Name</th><th class="px-4 py-2">Email</th><th class="px-4 py-2">Role</th><th class="px-4 py-2">Status</th><th class="px-4 py-2"></th></tr>
        </thead>
        <tbody class="divide-y">
            {{range .Users}}
            <tr>
                <td class="px-4 py-2">{{.Name}}</td>
                <td class="px-4 py-2">{{.Email}}</td>
                <td class="px-4 py-2"><span class="rounded px-2 py-0.5 text-xs {{roleBadge (printf "%s" .Role)}}">{{.Role}}</span></td>
                <td class="px-4 py-2">{{if .Enabled}}Active{{else}}Disabled{{end}}</td>
                <td class="px-4 py-2 text-right space-x-2">
                    <form method="post" action="/admin/users/{{.ID}}/toggle-status" class="inline">
                        <button type="submit" class="text-indigo-600">{{if .Enabled}}Disable{{else}}Enable{{end}}</button>
                    </form>
                    <form method="post" action="/admin/users/{{.ID}}/delete" class="inline">
                        <button type="submit" class="text-red-600">Delete</button>
                    </form>
                </td>
            </tr>
            {{else}}
            <tr><td colspan="5" class="px-4 py-6 text-center text-gray-500">No users yet.</td></tr>
            {{end}}
        </tbody>
    </table>
</div>`,

	"admin/results": `<h1 class="text-2xl font-semibold mb-6">Results</h1>
<div class="grid grid-cols-2 md:grid-cols-4 gap-4 mb-8">
    <div class="bg-white rounded shadow p-4"><p class="text-sm text-gray-500">Total</p><p class="text-2xl font-bold">{{.Stats.TotalResults}}</p></div>
    <div class="bg-white rounded shadow p-4"><p class="text-sm text-gray-500">Passed</p><p class="text-2xl font-bold text-green-700">{{.Stats.PassCount}}</p></div>
    <div class="bg-white rounded shadow p-4"><p class="text-sm text-gray-500">Failed</p><p class="text-2xl font-bold text-red-700">{{.Stats.FailCount}}</p></div>
    <div class="bg-white rounded shadow p-4"><p class="text-sm text-gray-500">Average Score</p><p class="text-2xl font-bold">{{percent .Stats.AverageScore}}</p></div>
</div>
<div class="bg-white rounded shadow overflow-hidden">
    <table class="min-w-full text-sm">
        <thead class="bg-gray-50 text-left text-gray-500">
            <tr><th class="px-4 py-2">Student</th><th class="px-4 py-2">Exam</th><th class="px-4 py-2">Score</th><th class="px-4 py-2">Percentage</th><th class="px-4 py-2">Status</th><th class="px-4 py-2">Submitted</th></tr>
        </thead>
        <tbody class="divide-y">
            {{range .Results}}
            <tr>
                <td class="px-4 py-2">{{if .User}}{{.User.Name}}{{else}}-{{end}}</td>
                <td class="px-4 py-2">{{if .Exam}}{{.Exam.Title}}{{else}}-{{end}}</td>
                <td class="px-4 py-2">{{.Score}} / {{.TotalMarks}}</td>
                <td class="px-4 py-2">{{percent .Percentage}}</td>
                <td class="px-4 py-2"><span class="rounded px-2 py-0.5 text-xs {{statusColor (printf "%s" .Status)}}">{{.Status}}</span></td>
                <td class="px-4 py-2">{{humanTime .SubmittedAt}}</td>
            </tr>
            {{else}}
            <tr><td colspan="6" class="px-4 py-6 text-center text-gray-500">No results yet.</td></tr>
            {{end}}
        </tbody>
    </table>
</div>`,
}
