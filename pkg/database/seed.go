package database

import (
	"encoding/json"

	"dsa_roadmap_backend/internal/model"

	"gorm.io/gorm"
)

// Catalog seed data ported from the original curriculum arrays. The source
// arrays contain a handful of duplicate IDs; inserts are deduplicated by slug
// here and the unique index on slug guards regressions.

func SeedCatalog(db *gorm.DB) error {
	if err := seedResources(db); err != nil {
		return err
	}
	if err := seedBlogs(db); err != nil {
		return err
	}
	if err := seedBooks(db); err != nil {
		return err
	}
	if err := seedProjects(db); err != nil {
		return err
	}
	return seedAlgorithms(db)
}

func seedResources(db *gorm.DB) error {
	var count int64
	db.Model(&model.CatalogResource{}).Count(&count)
	if count > 0 {
		return nil
	}
	seen := make(map[string]bool)
	for _, row := range resourceSeed() {
		if seen[row.Slug] {
			continue
		}
		seen[row.Slug] = true
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func resourceSeed() []model.CatalogResource {
	return []model.CatalogResource{
		{Slug: "gfg-dsa", Title: "GeeksforGeeks DSA", Description: "Comprehensive DSA tutorials and practice problems", URL: "https://www.geeksforgeeks.org/data-structures/", Type: "tutorial", Topics: json.RawMessage(`["Data Structures","Algorithms","Problem Solving"]`), Image: "https://media.geeksforgeeks.org/wp-content/cdn-uploads/gfg_200x200-min.png"},
		{Slug: "google-dev-dsa", Title: "Google Developers Tech Dev Guide", Description: "Google's official guide to data structures and algorithms", URL: "https://techdevguide.withgoogle.com/paths/data-structures-and-algorithms/", Type: "documentation", Topics: json.RawMessage(`["Data Structures","Algorithms","Interview Preparation"]`), Image: "https://www.gstatic.com/devrel-devsite/prod/v2210deb8920cd4a55bd580441aa58e7853afc04b39a9d9ac4198e1cd7fbe04ef/developers/images/favicon.png"},
		{Slug: "mdn-web-docs", Title: "MDN Web Docs", Description: "Comprehensive documentation for web technologies", URL: "https://developer.mozilla.org/en-US/", Type: "documentation", Topics: json.RawMessage(`["Web Development","JavaScript","HTML/CSS"]`), Image: "https://developer.mozilla.org/favicon-48x48.png"},
		{Slug: "javascript-info", Title: "JavaScript.info", Description: "Modern JavaScript tutorial with detailed explanations", URL: "https://javascript.info/", Type: "documentation", Topics: json.RawMessage(`["JavaScript","Modern JS","ES6+"]`), Image: "https://javascript.info/img/favicon/favicon.png"},
		{Slug: "python-docs", Title: "Python Official Documentation", Description: "Comprehensive Python language and standard library documentation", URL: "https://docs.python.org/3/", Type: "documentation", Topics: json.RawMessage(`["Python","Language Reference","Standard Library"]`), Image: "https://www.python.org/static/favicon.ico"},
		{Slug: "oracle-java-docs", Title: "Oracle Java Documentation", Description: "Official Java language and API documentation", URL: "https://docs.oracle.com/en/java/", Type: "documentation", Topics: json.RawMessage(`["Java","JDK","API Reference"]`), Image: "https://www.oracle.com/a/tech/img/cb88-java-logo-001.jpg"},
		{Slug: "cpp-reference", Title: "C++ Reference", Description: "Comprehensive reference for C++ language and standard library", URL: "https://en.cppreference.com/w/", Type: "documentation", Topics: json.RawMessage(`["C++","STL","Language Reference"]`), Image: "https://en.cppreference.com/favicon.ico"},
		{Slug: "rust-docs", Title: "The Rust Programming Language", Description: "Official Rust language documentation and book", URL: "https://doc.rust-lang.org/book/", Type: "documentation", Topics: json.RawMessage(`["Rust","Memory Safety","Systems Programming"]`), Image: "https://www.rust-lang.org/static/images/favicon.ico"},
		{Slug: "go-docs", Title: "Go Documentation", Description: "Official Go language documentation and standard library reference", URL: "https://go.dev/doc/", Type: "documentation", Topics: json.RawMessage(`["Go","Golang","Language Reference"]`), Image: "https://go.dev/favicon.ico"},
		{Slug: "roadmap-sh", Title: "roadmap.sh", Description: "Community-driven roadmaps, articles and resources for developers", URL: "https://roadmap.sh/", Type: "documentation", Topics: json.RawMessage(`["Learning Paths","Career Development","Programming"]`), Image: "https://roadmap.sh/manifest-icon-192.maskable.png"},
		{Slug: "clrs-book", Title: "Introduction to Algorithms (CLRS)", Description: "The canonical textbook on algorithms by Cormen, Leiserson, Rivest, and Stein", URL: "https://mitpress.mit.edu/books/introduction-algorithms-third-edition", Type: "documentation", Topics: json.RawMessage(`["Algorithms","Theoretical Computer Science","Academic"]`), Image: "https://mitpress.mit.edu/sites/default/files/styles/large_book_cover/http/mitp-content-server.mit.edu%3A18180/books/covers/cover/%3Fcollid%3Dbooks_covers_0%26isbn%3D9780262033848%26type%3D.jpg"},
		{Slug: "leetcode", Title: "LeetCode Problems", Description: "Practice coding problems with varying difficulty levels", URL: "https://leetcode.com/problemset/all/", Type: "practice", Topics: json.RawMessage(`["Problem Solving","Interviews","Competitive Programming"]`), Image: "https://leetcode.com/static/images/LeetCode_logo_rvs.png"},
		{Slug: "neetcode", Title: "NeetCode 150", Description: "Curated list of 150 LeetCode questions for coding interviews", URL: "https://neetcode.io/", Type: "practice", Topics: json.RawMessage(`["Interviews","Problem Patterns","Blind 75"]`), Image: "https://neetcode.io/assets/images/nc-logo.svg"},
		{Slug: "striver-sde-sheet", Title: "Striver's SDE Sheet", Description: "A structured 30-day roadmap for SDE interview preparation", URL: "https://takeuforward.org/interviews/strivers-sde-sheet-top-coding-interview-problems/", Type: "practice", Topics: json.RawMessage(`["Interview Preparation","Structured Learning","Problem Solving"]`), Image: "https://takeuforward.org/wp-content/uploads/2022/01/cropped-TUF-01.png"},
		{Slug: "striver-a2z-dsa", Title: "Striver's A2Z DSA Course", Description: "Complete DSA course from basic to advanced topics", URL: "https://takeuforward.org/strivers-a2z-dsa-course/strivers-a2z-dsa-course-sheet-2/", Type: "tutorial", Topics: json.RawMessage(`["Complete DSA","Structured Learning","All Levels"]`), Image: "https://takeuforward.org/wp-content/uploads/2022/01/cropped-TUF-01.png"},
		{Slug: "striver-cp-sheet", Title: "Striver's CP Sheet", Description: "Competitive programming problems categorized by topic", URL: "https://takeuforward.org/interview-experience/strivers-cp-sheet/", Type: "practice", Topics: json.RawMessage(`["Competitive Programming","Problem Solving","Advanced"]`), Image: "https://takeuforward.org/wp-content/uploads/2022/01/cropped-TUF-01.png"},
		{Slug: "arsh-dsa-sheet", Title: "Arsh Goyal's DSA Sheet", Description: "280 questions for interview preparation with company tags", URL: "https://docs.google.com/spreadsheets/d/1MGVBJ8HkRbCnU6EQASjJKCqQE8BWng4qgL0n3vCVOxE/edit#gid=0", Type: "practice", Topics: json.RawMessage(`["Company-wise Questions","Interview Preparation","DSA"]`), Image: "https://media.licdn.com/dms/image/D4D03AQHfUQBZsO0HKA/profile-displayphoto-shrink_800_800/0/1677442553417?e=1720742400&v=beta&t=_Wd_zWOvQJzEVJbSi_CKbmJKnDKNR-_Ym_TIXCrHFP8"},
		{Slug: "visualgo", Title: "VisuAlgo", Description: "Visualizing data structures and algorithms through animation", URL: "https://visualgo.net/", Type: "tutorial", Topics: json.RawMessage(`["Visualization","Data Structures","Algorithms"]`), Image: "https://visualgo.net/img/favicon.png"},
		{Slug: "devdocs", Title: "DevDocs", Description: "Fast, offline, and free documentation browser for developers", URL: "https://devdocs.io/", Type: "documentation", Topics: json.RawMessage(`["API Reference","Documentation","Multiple Languages"]`), Image: "https://devdocs.io/images/icon-192.png"},
		{Slug: "big-o-cheatsheet", Title: "Big-O Cheat Sheet", Description: "Time and space complexity cheat sheet for common algorithms", URL: "https://www.bigocheatsheet.com/", Type: "documentation", Topics: json.RawMessage(`["Time Complexity","Space Complexity","Algorithm Analysis"]`), Image: "https://www.bigocheatsheet.com/img/big-o-cheat-sheet-poster.png"},
		{Slug: "algo-visualizer", Title: "Algorithm Visualizer", Description: "Interactive online platform that visualizes algorithms from code", URL: "https://algorithm-visualizer.org/", Type: "tutorial", Topics: json.RawMessage(`["Visualization","Algorithms","Interactive Learning"]`), Image: "https://algorithm-visualizer.org/favicon.png"},
		{Slug: "cs50", Title: "Harvard CS50", Description: "Harvard's introduction to computer science and programming", URL: "https://cs50.harvard.edu/x/", Type: "video", Topics: json.RawMessage(`["Computer Science","Programming","Fundamentals"]`), Image: "https://cs50.harvard.edu/x/2023/favicon.ico"},
		{Slug: "mit-algorithms", Title: "MIT Introduction to Algorithms", Description: "MIT's course on algorithms and data structures", URL: "https://ocw.mit.edu/courses/electrical-engineering-and-computer-science/6-006-introduction-to-algorithms-fall-2011/", Type: "video", Topics: json.RawMessage(`["Algorithms","Data Structures","Academic"]`), Image: "https://ocw.mit.edu/images/mit_logo_footer.png"},
		{Slug: "codeforces", Title: "Codeforces", Description: "Competitive programming platform with regular contests", URL: "https://codeforces.com/", Type: "practice", Topics: json.RawMessage(`["Competitive Programming","Contests","Problem Solving"]`), Image: "https://codeforces.org/s/0/favicon-96x96.png"},
		{Slug: "atcoder", Title: "AtCoder", Description: "Japanese competitive programming platform with high-quality problems", URL: "https://atcoder.jp/", Type: "practice", Topics: json.RawMessage(`["Competitive Programming","Contests","Algorithm Challenges"]`), Image: "https://img.atcoder.jp/assets/favicon.png"},
		{Slug: "hackerrank", Title: "HackerRank", Description: "Practice coding challenges and prepare for interviews", URL: "https://www.hackerrank.com/domains/algorithms", Type: "practice", Topics: json.RawMessage(`["Algorithms","Data Structures","Interview Preparation"]`), Image: "https://hrcdn.net/community-frontend/assets/favicon-ddc852f75a.png"},
		{Slug: "codechef", Title: "CodeChef", Description: "Competitive programming platform with long and short contests", URL: "https://www.codechef.com/", Type: "practice", Topics: json.RawMessage(`["Competitive Programming","Contests","Problem Solving"]`), Image: "https://www.codechef.com/sites/all/themes/abessive/logo.svg"},
		{Slug: "interviewbit", Title: "InterviewBit", Description: "Platform for interview preparation with company-specific questions", URL: "https://www.interviewbit.com/practice/", Type: "practice", Topics: json.RawMessage(`["Interview Preparation","Company Questions","Problem Solving"]`), Image: "https://www.interviewbit.com/blog/wp-content/uploads/2021/01/ib-logo-inverted.png"},
		{Slug: "algoexpert", Title: "AlgoExpert", Description: "Platform with 160+ hand-picked questions for interview preparation", URL: "https://www.algoexpert.io/", Type: "practice", Topics: json.RawMessage(`["Interview Preparation","Video Explanations","Curated Problems"]`), Image: "https://assets.algoexpert.io/g1e47ba0a7c-prod/dist/images/favicon.ico"},
		{Slug: "programiz-dsa", Title: "Programiz – Learn Data Structures and Algorithms", Description: "A step-by-step, text-based tutorial covering beginner to advanced DSA topics, complete with quizzes, examples, and practice problems", URL: "https://www.programiz.com/dsa", Type: "tutorial", Topics: json.RawMessage(`["Data Structures","Algorithms","Beginner to Advanced"]`), Image: "https://programiz.com/favicon.ico"},
		{Slug: "gfg-dsa-tutorial", Title: "GeeksforGeeks – DSA Tutorial", Description: "An up-to-date series organized by topic (logic building, complexity analysis, arrays, trees, graphs, hashing, DP) with code snippets in C++, Java, Python, and JavaScript", URL: "https://www.geeksforgeeks.org/learn-data-structures-and-algorithms-dsa-tutorial/", Type: "tutorial", Topics: json.RawMessage(`["Data Structures","Algorithms","Multiple Languages"]`), Image: "https://media.geeksforgeeks.org/wp-content/cdn-uploads/gfg_200x200-min.png"},
		{Slug: "tutorialspoint-dsa", Title: "Tutorialspoint – Data Structures & Algorithms", Description: "Detailed, language-agnostic explanations paired with an online editor to try C, C++, Java, or Python implementations directly in your browser", URL: "https://www.tutorialspoint.com/data_structures_algorithms/index.htm", Type: "tutorial", Topics: json.RawMessage(`["Data Structures","Algorithms","Online Editor"]`), Image: "https://www.tutorialspoint.com/favicon.ico"},
		{Slug: "cp-algorithms", Title: "CP-Algorithms (e-maxx.ru English)", Description: "Authoritative reference for algorithms in competitive programming: theory, C++ code examples, and complexity analysis", URL: "https://cp-algorithms.com/index.html", Type: "tutorial", Topics: json.RawMessage(`["Competitive Programming","Algorithms","C++"]`), Image: "https://cp-algorithms.com/favicon.ico"},
		{Slug: "freecodecamp-dsa-guide", Title: "freeCodeCamp – Learn Data Structures and Algorithms", Description: "Article-based tutorial introducing core concepts, Big-O notation, and linking to interactive coding challenges", URL: "https://www.freecodecamp.org/news/learn-data-structures-and-algorithms/", Type: "tutorial", Topics: json.RawMessage(`["Data Structures","Algorithms","Big-O Notation"]`), Image: "https://www.freecodecamp.org/favicon-32x32.png"},
		{Slug: "w3schools-dsa", Title: "W3Schools – DSA Tutorial", Description: "Beginner-friendly walkthrough of arrays, stacks, queues, trees, graphs, and sorting/search algorithms, with live \"Try it Yourself\" code boxes", URL: "https://www.w3schools.com/dsa/", Type: "tutorial", Topics: json.RawMessage(`["Data Structures","Algorithms","Interactive Learning"]`), Image: "https://www.w3schools.com/favicon.ico"},
		{Slug: "freecodecamp-python-dsa", Title: "freeCodeCamp – Learn Data Structures and Algorithms in Python", Description: "A full article covering Python implementations of arrays, linked lists, stacks, queues, trees, and sorting algorithms", URL: "https://www.freecodecamp.org/news/learn-data-structures-and-algorithms/", Type: "tutorial", Topics: json.RawMessage(`["Python","Data Structures","Algorithms"]`), Image: "https://www.freecodecamp.org/favicon-32x32.png"},
		{Slug: "analytics-vidhya-python-dsa", Title: "Analytics Vidhya – A Beginners' Guide to Data Structures in Python", Description: "Illustrated tutorial on built-in vs. user-defined Python data structures, complete with code snippets and diagrams", URL: "https://www.analyticsvidhya.com/blog/2022/03/data-structures-in-python/", Type: "tutorial", Topics: json.RawMessage(`["Python","Data Structures","Beginners"]`), Image: "https://www.analyticsvidhya.com/wp-content/uploads/2015/02/logo_square_withtext.png"},
		{Slug: "programiz-python-dsa", Title: "Programiz – Getting Started with DSA (Python)", Description: "Setup guide plus Python-focused DSA tutorials showing how to implement stacks, queues, linked lists, and more", URL: "https://www.programiz.com/dsa/getting-started", Type: "tutorial", Topics: json.RawMessage(`["Python","Data Structures","Algorithms"]`), Image: "https://programiz.com/favicon.ico"},
		{Slug: "programiz-java-dsa", Title: "Programiz – Learn Java Programming (DSA Section)", Description: "Java-centric lessons on arrays, linked lists, stacks, queues, trees, graphs, and algorithms like sorting/searching", URL: "https://www.programiz.com/java-programming", Type: "tutorial", Topics: json.RawMessage(`["Java","Data Structures","Algorithms"]`), Image: "https://programiz.com/favicon.ico"},
		{Slug: "programiz-java-algorithms", Title: "Programiz – Java Algorithms", Description: "Tutorials on Java Collections Framework algorithms (sort, shuffle, binarySearch, reverse, etc.) with code examples", URL: "https://www.programiz.com/java-programming/algorithms", Type: "tutorial", Topics: json.RawMessage(`["Java","Algorithms","Collections Framework"]`), Image: "https://programiz.com/favicon.ico"},
		{Slug: "gfg-java-dsa", Title: "GeeksforGeeks – DSA Tutorial (Java Examples)", Description: "All major DSA topics illustrated with Java code snippets, covering complexities and interview-style problems", URL: "https://www.geeksforgeeks.org/learn-data-structures-and-algorithms-dsa-tutorial/", Type: "tutorial", Topics: json.RawMessage(`["Java","Data Structures","Algorithms"]`), Image: "https://media.geeksforgeeks.org/wp-content/cdn-uploads/gfg_200x200-min.png"},
		{Slug: "tutorialspoint-cpp-dsa", Title: "Tutorialspoint – Data Structures & Algorithms (C/C++)", Description: "Language-agnostic core tutorial with C++ examples for all DSA topics you can run in the integrated editor", URL: "https://www.tutorialspoint.com/data_structures_algorithms/index.htm", Type: "tutorial", Topics: json.RawMessage(`["C++","Data Structures","Algorithms"]`), Image: "https://www.tutorialspoint.com/favicon.ico"},
		{Slug: "gfg-cpp-dsa", Title: "GeeksforGeeks – DSA Tutorial (C++ Examples)", Description: "Chapter-wise guide with C++ implementations for arrays, trees, graphs, and dynamic programming", URL: "https://www.geeksforgeeks.org/learn-data-structures-and-algorithms-dsa-tutorial/", Type: "tutorial", Topics: json.RawMessage(`["C++","Data Structures","Algorithms"]`), Image: "https://media.geeksforgeeks.org/wp-content/cdn-uploads/gfg_200x200-min.png"},
		{Slug: "cp-algorithms-cpp", Title: "CP-Algorithms – C++ Implementations", Description: "Extensive C++ code samples for hundreds of algorithms, ideal for competitive programming study", URL: "https://cp-algorithms.com/index.html", Type: "tutorial", Topics: json.RawMessage(`["C++","Competitive Programming","Algorithms"]`), Image: "https://cp-algorithms.com/favicon.ico"},
		{Slug: "freecodecamp-js-dsa", Title: "freeCodeCamp – JavaScript Algorithms and Data Structures", Description: "Part of freeCodeCamp's self-paced curriculum, covering OOP, functional programming, and all core DSA in JS", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/", Type: "tutorial", Topics: json.RawMessage(`["JavaScript","Data Structures","Algorithms"]`), Image: "https://www.freecodecamp.org/favicon-32x32.png"},
		{Slug: "w3schools-js-dsa", Title: "W3Schools – DSA Tutorial (JS Examples)", Description: "Interactive JS examples for stacks, queues, trees, and algorithms, with live code editor", URL: "https://www.w3schools.com/dsa/", Type: "tutorial", Topics: json.RawMessage(`["JavaScript","Data Structures","Algorithms"]`), Image: "https://www.w3schools.com/favicon.ico"},
		{Slug: "programiz-js-stack", Title: "Programiz – Stack Data Structure (JavaScript)", Description: "Shows JS-specific implementation of stacks along with other data structures and algorithms", URL: "https://www.programiz.com/dsa/stack", Type: "tutorial", Topics: json.RawMessage(`["JavaScript","Stack","Data Structures"]`), Image: "https://programiz.com/favicon.ico"},
		{Slug: "abdul-bari", Title: "Abdul Bari - Algorithms", Description: "Comprehensive algorithm course covering all major topics", URL: "https://www.youtube.com/playlist?list=PLDN4rrl48XKpZkf03iYFl-O29szjTrs_O", Type: "video", Topics: json.RawMessage(`["Algorithms","Theory","Analysis"]`), Image: "https://yt3.googleusercontent.com/ytc/APkrFKZGyiFJtoR-L1RfS6h84tTqIGrB-5jgBfkIC0jDgA=s176-c-k-c0x00ffffff-no-rj"},
		{Slug: "cs-dojo", Title: "CS Dojo - Data Structures & Algorithms", Description: "Beginner-friendly DSA tutorials", URL: "https://www.youtube.com/playlist?list=PLBZBJbE_rGRV8D7XZ08LK6z-4zPoWzu5H", Type: "video", Topics: json.RawMessage(`["Data Structures","Algorithms","Beginner"]`), Image: "https://yt3.googleusercontent.com/ytc/APkrFKbpSojje_-tkBQOzgEBUCF2Y9TJgiI6V0eNP5HF=s176-c-k-c0x00ffffff-no-rj"},
		{Slug: "freecodecamp-dsa", Title: "freeCodeCamp - Data Structures and Algorithms", Description: "Full course on data structures and algorithms", URL: "https://www.youtube.com/watch?v=RBSGKlAvoiM", Type: "video", Topics: json.RawMessage(`["Data Structures","Algorithms","Comprehensive"]`), Image: "https://yt3.googleusercontent.com/ytc/APkrFKaqca-xQcJtp9XfX3YQC7KPDLG5hEHbTY5PbMIZ=s176-c-k-c0x00ffffff-no-rj"},
		{Slug: "tech-with-tim", Title: "Tech With Tim - Python Data Structures", Description: "Python data structures tutorials", URL: "https://www.youtube.com/playlist?list=PLzMcBGfZo4-nhWva-6OVh1yKWHBs4o_tv", Type: "video", Topics: json.RawMessage(`["Python","Data Structures","Tutorials"]`), Image: "https://yt3.googleusercontent.com/ytc/APkrFKa3yoeLWJXX30BOAgr75umgoreAGjH8uKvYIOKa=s176-c-k-c0x00ffffff-no-rj"},
		{Slug: "striver-youtube", Title: "Striver (takeUforward) - DSA Tutorials", Description: "Comprehensive DSA tutorials and interview preparation", URL: "https://www.youtube.com/c/takeUforward", Type: "video", Topics: json.RawMessage(`["DSA","Interview Preparation","Problem Solving"]`), Image: "https://yt3.googleusercontent.com/ytc/APkrFKbcqDRQJzn1FGP3Z3sjvKVPiKrAOCYZ_dJAcJ-1=s176-c-k-c0x00ffffff-no-rj"},
		{Slug: "neetcode-youtube", Title: "NeetCode - LeetCode Solutions", Description: "Video explanations for popular LeetCode problems", URL: "https://www.youtube.com/c/NeetCode", Type: "video", Topics: json.RawMessage(`["LeetCode","Problem Solving","Interviews"]`), Image: "https://yt3.googleusercontent.com/FqiGBOsNpeWbNw20ULboW0jy88JdpqFO9a-YRJ0C2oc4lZ8uoHYJ38PWSkrjdC_zQgNW9pGU=s176-c-k-c0x00ffffff-no-rj"},
		{Slug: "back-to-back-swe", Title: "Back To Back SWE", Description: "In-depth explanations of algorithms and data structures", URL: "https://www.youtube.com/c/BackToBackSWE", Type: "video", Topics: json.RawMessage(`["Algorithms","Data Structures","Interview Preparation"]`), Image: "https://yt3.googleusercontent.com/ytc/APkrFKYcYswt_UhD7D3gYxh-qQhcU8ONYu77jWK5Zzp0=s176-c-k-c0x00ffffff-no-rj"},
		{Slug: "william-fiset", Title: "William Fiset - Graph Theory", Description: "Comprehensive graph theory algorithms course", URL: "https://www.youtube.com/playlist?list=PLDV1Zeh2NRsDGO4--qE8yH72HFL1Km93P", Type: "video", Topics: json.RawMessage(`["Graph Theory","Algorithms","Advanced"]`), Image: "https://yt3.googleusercontent.com/ytc/APkrFKZJdGQNLMJg6qRYMEFZVMRfIGcC5pZy-eFJpvMQNw=s176-c-k-c0x00ffffff-no-rj"},
		{Slug: "tushar-roy", Title: "Tushar Roy - Coding Made Simple", Description: "Detailed explanations of complex algorithms", URL: "https://www.youtube.com/user/tusharroy2525", Type: "video", Topics: json.RawMessage(`["Dynamic Programming","Algorithms","Problem Solving"]`), Image: "https://yt3.googleusercontent.com/ytc/APkrFKYSGq7QZd6rcyOJMKt3aSHHHWJoZIRfW_RDsNBM=s176-c-k-c0x00ffffff-no-rj"},
		{Slug: "java-docs", Title: "Oracle Java Documentation", Description: "Official Java documentation and tutorials", URL: "https://docs.oracle.com/javase/", Type: "documentation", Topics: json.RawMessage(`["Java","Language Basics","API Reference"]`), Image: "https://www.oracle.com/a/tech/img/cb88-java-logo-001.jpg", Language: model.Language("java")},
		{Slug: "java-collections", Title: "Java Collections Framework", Description: "Learn about Java Collections Framework for data structures", URL: "https://docs.oracle.com/javase/tutorial/collections/", Type: "documentation", Topics: json.RawMessage(`["Collections","Data Structures","Java"]`), Image: "https://www.oracle.com/a/tech/img/cb88-java-logo-001.jpg", Language: model.Language("java")},
		{Slug: "java-visualizer", Title: "Java Visualizer", Description: "Visualize Java code execution step by step", URL: "https://cscircles.cemc.uwaterloo.ca/java_visualize/", Type: "tutorial", Topics: json.RawMessage(`["Java","Visualization","Debugging"]`), Image: "https://cscircles.cemc.uwaterloo.ca/java_visualize/favicon.ico", Language: model.Language("java")},
		{Slug: "striver-java", Title: "Striver's SDE Sheet (Java Solutions)", Description: "Java implementations for all problems in Striver's SDE Sheet", URL: "https://github.com/striver79/SDESheet/tree/main/Java", Type: "practice", Topics: json.RawMessage(`["Java","Interview Preparation","Problem Solving"]`), Image: "https://takeuforward.org/wp-content/uploads/2022/01/cropped-TUF-01.png", Language: model.Language("java")},
		{Slug: "baeldung-java-dsa", Title: "Baeldung Java DSA", Description: "High-quality tutorials on Java data structures and algorithms", URL: "https://www.baeldung.com/java-algorithms", Type: "tutorial", Topics: json.RawMessage(`["Java","Data Structures","Algorithms"]`), Image: "https://www.baeldung.com/wp-content/themes/baeldung/favicon/favicon-32x32.png", Language: model.Language("java")},
		{Slug: "python-dsa", Title: "Problem Solving with Algorithms and Data Structures using Python", Description: "Interactive book on DSA with Python", URL: "https://runestone.academy/runestone/books/published/pythonds/index.html", Type: "tutorial", Topics: json.RawMessage(`["Python","Data Structures","Algorithms"]`), Image: "https://runestone.academy/runestone/static/images/logo_small.png", Language: model.Language("python")},
		{Slug: "python-tutor", Title: "Python Tutor", Description: "Visualize Python code execution step by step", URL: "http://pythontutor.com/", Type: "tutorial", Topics: json.RawMessage(`["Python","Visualization","Debugging"]`), Image: "http://pythontutor.com/favicon.ico", Language: model.Language("python")},
		{Slug: "real-python", Title: "Real Python", Description: "Python tutorials for developers of all skill levels", URL: "https://realpython.com/tutorials/algorithms/", Type: "tutorial", Topics: json.RawMessage(`["Python","Practical Examples","Tutorials"]`), Image: "https://realpython.com/static/favicon.68cbf4197b0c.png", Language: model.Language("python")},
		{Slug: "mdn-js", Title: "MDN JavaScript Guide", Description: "Comprehensive guide to JavaScript", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", Type: "documentation", Topics: json.RawMessage(`["JavaScript","Language Basics","API Reference"]`), Image: "https://developer.mozilla.org/favicon-48x48.png", Language: model.Language("javascript")},
		{Slug: "js-dsa", Title: "JavaScript Algorithms and Data Structures", Description: "Collection of JavaScript based examples of algorithms and data structures", URL: "https://github.com/trekhleb/javascript-algorithms", Type: "tutorial", Topics: json.RawMessage(`["JavaScript","Data Structures","Algorithms"]`), Image: "https://github.githubassets.com/favicons/favicon.svg", Language: model.Language("javascript")},
		{Slug: "js-visualizer", Title: "JavaScript Visualizer", Description: "Visualize JavaScript code execution and scope", URL: "https://ui.dev/javascript-visualizer/", Type: "tutorial", Topics: json.RawMessage(`["JavaScript","Visualization","Scope"]`), Image: "https://ui.dev/favicon.ico", Language: model.Language("javascript")},
		{Slug: "eloquent-js", Title: "Eloquent JavaScript", Description: "A modern introduction to programming with JavaScript", URL: "https://eloquentjavascript.net/", Type: "tutorial", Topics: json.RawMessage(`["JavaScript","Programming","Web Development"]`), Image: "https://eloquentjavascript.net/img/cover.jpg", Language: model.Language("javascript")},
		{Slug: "cpp-dsa", Title: "C++ Data Structures and Algorithms", Description: "Learn DSA concepts with C++ implementations", URL: "https://www.geeksforgeeks.org/c-plus-plus/", Type: "tutorial", Topics: json.RawMessage(`["C++","Data Structures","Algorithms"]`), Image: "https://media.geeksforgeeks.org/wp-content/cdn-uploads/gfg_200x200-min.png", Language: model.Language("cpp")},
		{Slug: "cpp-visualizer", Title: "C++ Tutor", Description: "Visualize C++ code execution step by step", URL: "http://pythontutor.com/cpp.html", Type: "tutorial", Topics: json.RawMessage(`["C++","Visualization","Debugging"]`), Image: "http://pythontutor.com/favicon.ico", Language: model.Language("cpp")},
		{Slug: "striver-cpp", Title: "Striver's SDE Sheet (C++ Solutions)", Description: "C++ implementations for all problems in Striver's SDE Sheet", URL: "https://github.com/striver79/SDESheet/tree/main/C%2B%2B", Type: "practice", Topics: json.RawMessage(`["C++","Interview Preparation","Problem Solving"]`), Image: "https://takeuforward.org/wp-content/uploads/2022/01/cropped-TUF-01.png", Language: model.Language("cpp")},
		{Slug: "codeforces-edu", Title: "Codeforces EDU", Description: "Educational section with interactive problems and tutorials", URL: "https://codeforces.com/edu/courses", Type: "tutorial", Topics: json.RawMessage(`["C++","Algorithms","Interactive Learning"]`), Image: "https://codeforces.org/s/0/favicon-96x96.png", Language: model.Language("cpp")},
		{Slug: "csharp-docs", Title: "C# Documentation", Description: "Official C# documentation and tutorials", URL: "https://docs.microsoft.com/en-us/dotnet/csharp/", Type: "documentation", Topics: json.RawMessage(`["C#","Language Basics","API Reference"]`), Image: "https://docs.microsoft.com/en-us/media/logos/logo-ms-social.png", Language: model.Language("csharp")},
		{Slug: "csharp-dsa", Title: "C# Data Structures and Algorithms", Description: "Learn DSA concepts with C# implementations", URL: "https://www.geeksforgeeks.org/csharp-programming-language/", Type: "tutorial", Topics: json.RawMessage(`["C#","Data Structures","Algorithms"]`), Image: "https://media.geeksforgeeks.org/wp-content/cdn-uploads/gfg_200x200-min.png", Language: model.Language("csharp")},
		{Slug: "csharp-visualizer", Title: "SharpLab", Description: "C# code playground that shows intermediate steps and compiled code", URL: "https://sharplab.io/", Type: "tutorial", Topics: json.RawMessage(`["C#","Compilation","IL Code"]`), Image: "https://sharplab.io/favicon.ico", Language: model.Language("csharp")},
		{Slug: "csharp-in-depth", Title: "C# in Depth", Description: "Jon Skeet's deep dive into C# features and best practices", URL: "https://csharpindepth.com/", Type: "tutorial", Topics: json.RawMessage(`["C#","Advanced","Best Practices"]`), Image: "https://csharpindepth.com/favicon.ico", Language: model.Language("csharp")},
	}
}

func seedBlogs(db *gorm.DB) error {
	var count int64
	db.Model(&model.Blog{}).Count(&count)
	if count > 0 {
		return nil
	}
	seen := make(map[string]bool)
	for _, row := range blogSeed() {
		if seen[row.Slug] {
			continue
		}
		seen[row.Slug] = true
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func blogSeed() []model.Blog {
	return []model.Blog{
		{Slug: "blog-1", Title: "Learn Data Structures and Algorithms", Author: "freeCodeCamp", Date: "May 11, 2023", ReadTime: "15", Description: "A comprehensive walkthrough of core DSA concepts—from Big-O to trees and graphs—organized as an interactive tutorial with embedded code examples.", Category: "algorithms", Tags: json.RawMessage(`["Algorithms","Data Structures","Tutorial","Big O"]`), URL: "https://www.freecodecamp.org/news/learn-data-structures-and-algorithms/", Source: "freeCodeCamp", SourceLogo: "https://cdn.freecodecamp.org/platform/universal/fcc_primary.svg"},
		{Slug: "blog-2", Title: "Data Structures Handbook – The Key to Scalable Software", Author: "freeCodeCamp", Date: "Nov 15, 2023", ReadTime: "12", Description: "A concise handbook covering arrays, linked lists, stacks, queues, trees, and graphs, with performance trade-offs and real-world use cases.", Category: "data-structures", Tags: json.RawMessage(`["Data Structures","Scalability","Software Engineering","Handbook"]`), URL: "https://www.freecodecamp.org/news/data-structures-the-key-to-scalable-software/", Source: "freeCodeCamp", SourceLogo: "https://cdn.freecodecamp.org/platform/universal/fcc_primary.svg"},
		{Slug: "blog-3", Title: "Resources to master Data Structures and Algorithms", Author: "Anubhav Sinha", Date: "Jan 5, 2021", ReadTime: "10", Description: "A curated list of the author's favorite tutorials, courses, and reference sites—complete with personal notes on why each resource shines.", Category: "algorithms", Tags: json.RawMessage(`["Resources","Learning","Tutorials","Courses"]`), URL: "https://anubhavsinha98.medium.com/resources-to-master-data-structures-and-algorithms-24450dc6d52b", Source: "Medium", SourceLogo: "https://miro.medium.com/v2/resize:fill:64:64/1*sHhtYhaCe2Uc3IU0IgKwIQ.png"},
		{Slug: "blog-4", Title: "Top 10 Data Structure and Algorithms Articles Programmers Should Read This Week", Author: "JavaRevisited", Date: "Mar 20, 2019", ReadTime: "8", Description: "A community-vetted roundup of must-read articles spanning Java, Python, C/C++, and JavaScript, ideal for drilling into specific DSA topics.", Category: "algorithms", Tags: json.RawMessage(`["Articles","Programming Languages","Weekly Roundup"]`), URL: "https://medium.com/javarevisited/10-algorithms-articles-programmers-should-read-this-week-f55fcacd9469", Source: "Medium", SourceLogo: "https://miro.medium.com/v2/resize:fill:64:64/1*sHhtYhaCe2Uc3IU0IgKwIQ.png"},
		{Slug: "blog-5", Title: "Learn Data Structures and Algorithms (DSA)", Author: "Programiz Team", Date: "Jan 1, 2024", ReadTime: "20", Description: "Beginner-friendly lessons on each data structure and algorithm, with quizzes, practice problems, and multilingual code snippets.", Category: "data-structures", Tags: json.RawMessage(`["Beginner","Tutorials","Practice Problems","Multiple Languages"]`), URL: "https://www.programiz.com/dsa", Source: "Programiz", SourceLogo: "https://www.programiz.com/sites/all/themes/programiz/assets/favicon.png"},
		{Slug: "blog-6", Title: "Data Structures & Algorithms (DSA) Tutorial", Author: "Tutorialspoint Team", Date: "Jan 1, 2024", ReadTime: "25", Description: "Detailed, language-agnostic write-up covering DSA fundamentals, with an integrated online compiler for hands-on practice.", Category: "data-structures", Tags: json.RawMessage(`["Tutorial","Fundamentals","Online Compiler","Hands-on"]`), URL: "https://www.tutorialspoint.com/data_structures_algorithms/index.htm", Source: "TutorialsPoint", SourceLogo: "https://www.tutorialspoint.com/favicon.ico"},
		{Slug: "blog-7", Title: "Algorithms for Competitive Programming", Author: "CP-Algorithms Team", Date: "Jan 1, 2024", ReadTime: "30", Description: "The English translation of e-maxx.ru's authoritative algorithm encyclopedia—each article includes theory, code examples, and complexity analysis.", Category: "algorithms", Tags: json.RawMessage(`["Competitive Programming","Encyclopedia","Code Examples","Complexity Analysis"]`), URL: "https://cp-algorithms.com/index.html", Source: "CP Algorithms", SourceLogo: "https://cp-algorithms.com/favicon.ico"},
		{Slug: "blog-8", Title: "7 Steps to Improve Your Data Structure and Algorithm Skills", Author: "HackerEarth Team", Date: "Jan 1, 2024", ReadTime: "12", Description: "A practical, step-by-step guide—from mastering fundamentals to tackling complex problems—to systematically boost your DSA proficiency.", Category: "algorithms", Tags: json.RawMessage(`["Skills Improvement","Step-by-Step","Fundamentals","Problem Solving"]`), URL: "https://www.hackerearth.com/blog/developers/7-steps-to-improve-your-data-structure-and-algorithm-skills/", Source: "HackerEarth", SourceLogo: "https://static-fastly.hackerearth.com/static/hackerearth/images/badge/HE_badge.png"},
		{Slug: "blog-9", Title: "A Beginners' Guide to Data Structures in Python", Author: "Analytics Vidhya Team", Date: "Mar 15, 2022", ReadTime: "10", Description: "An introductory tutorial to both built-in and user-defined Python data structures, with code snippets and visual diagrams.", Category: "data-structures", Tags: json.RawMessage(`["Python","Beginners","Code Snippets","Visual Diagrams"]`), URL: "https://www.analyticsvidhya.com/blog/2022/03/data-structures-in-python/", Source: "Analytics Vidhya", SourceLogo: "https://www.analyticsvidhya.com/wp-content/themes/analytics-vidhya/images/logo.svg"},
		{Slug: "blog-10", Title: "Intro to Stacks – Data Structure and Algorithm Tutorial", Author: "freeCodeCamp", Date: "Apr 5, 2022", ReadTime: "8", Description: "A focused deep-dive on the stack data structure: operations, memory layout, and typical interview questions, all explained with diagrams.", Category: "data-structures", Tags: json.RawMessage(`["Stacks","Deep Dive","Interview Questions","Diagrams"]`), URL: "https://www.freecodecamp.org/news/intro-to-stacks-data-structure-and-algorithm-tutorial/", Source: "freeCodeCamp", SourceLogo: "https://cdn.freecodecamp.org/platform/universal/fcc_primary.svg"},
		{Slug: "blog-11", Title: "DSA Tutorial – Learn Data Structures and Algorithms", Author: "GeeksforGeeks Team", Date: "Apr 27, 2024", ReadTime: "25", Description: "A structured roadmap covering logic building, complexity analysis, arrays, sorting, hashing, trees, graphs, and more—complete with code examples.", Category: "algorithms", Tags: json.RawMessage(`["Roadmap","Complexity Analysis","Code Examples","Comprehensive"]`), URL: "https://www.geeksforgeeks.org/dsa-tutorial-learn-data-structures-and-algorithms/", Source: "GeeksforGeeks", SourceLogo: "https://media.geeksforgeeks.org/wp-content/cdn-uploads/gfg_200x200-min.png"},
		{Slug: "blog-12", Title: "Visualising Data Structures and Algorithms through Animation", Author: "VisuAlgo Team", Date: "Jan 1, 2024", ReadTime: "15", Description: "Interactive, step-by-step animations of 30+ DSA topics—you can input your own data to see pointer movements, heap operations, graph traversals, and more.", Category: "data-structures", Tags: json.RawMessage(`["Visualization","Animation","Interactive","Step-by-Step"]`), URL: "https://visualgo.net/", Source: "VisuAlgo", SourceLogo: "https://visualgo.net/favicon.ico"},
		{Slug: "blog-13", Title: "Algorithms | Computer Science Theory", Author: "Khan Academy Team", Date: "Jan 1, 2024", ReadTime: "20", Description: "Self-paced articles and visual demos on asymptotic analysis, sorting, searching, recursion, and graph algorithms—perfect for foundational learning.", Category: "algorithms", Tags: json.RawMessage(`["Theory","Visual Demos","Self-Paced","Foundational"]`), URL: "https://www.khanacademy.org/computing/computer-science/algorithms", Source: "Khan Academy", SourceLogo: "https://cdn.kastatic.org/images/favicon.ico?logo"},
	}
}

func seedBooks(db *gorm.DB) error {
	var count int64
	db.Model(&model.Book{}).Count(&count)
	if count > 0 {
		return nil
	}
	seen := make(map[string]bool)
	for _, row := range bookSeed() {
		if seen[row.Slug] {
			continue
		}
		seen[row.Slug] = true
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func bookSeed() []model.Book {
	return []model.Book{
		{Slug: "book-1", Title: "GitHub – Free Programming Books", Author: "EbookFoundation", Description: "A crowd-maintained repository of over 9,000 free programming and tech books in multiple formats (PDF/EPUB/HTML), covering languages, frameworks, system design, DevOps, ML, and interview prep. Updated daily by contributors worldwide.", Category: "algorithms", Tags: json.RawMessage(`["Open Source","Multiple Languages","Comprehensive"]`), URL: "https://github.com/EbookFoundation/free-programming-books", CoverImage: "https://github.githubassets.com/images/modules/logos_page/GitHub-Mark.png", Format: "Multiple", Pages: 9000},
		{Slug: "book-2", Title: "FreeComputerBooks.com", Author: "Various Authors", Description: "A comprehensive directory linking to free eBooks and lecture notes across programming, algorithms, AI, networks, embedded systems, and more. Organized by category and regularly refreshed.", Category: "data-structures", Tags: json.RawMessage(`["Directory","Multiple Topics","Free Resources"]`), URL: "https://freecomputerbooks.com/", CoverImage: "https://freecomputerbooks.com/images/fcb88x31.gif", Format: "Multiple", Pages: 1000},
		{Slug: "book-3", Title: "Free Programming Books Collection", Author: "Rafiquzzaman420", Description: "An alternative GitHub collection with curated lists of free books for Java, Python, Go, Ruby, C/C++, web development, security, and more—each category linking to reputable sources.", Category: "language-specific", Tags: json.RawMessage(`["GitHub","Multiple Languages","Curated"]`), URL: "https://github.com/Rafiquzzaman420/Free-Programming-Books", CoverImage: "https://github.githubassets.com/images/modules/logos_page/GitHub-Mark.png", Format: "Multiple", Pages: 500},
		{Slug: "book-4", Title: "Introduction to Algorithms", Author: "Thomas H. Cormen, Charles E. Leiserson, Ronald L. Rivest, Clifford Stein", Description: "A comprehensive introduction to algorithms. Covers a broad range of algorithms in depth, yet makes their design and analysis accessible to all levels of readers.", Category: "algorithms", Tags: json.RawMessage(`["Algorithms","Computer Science","CLRS"]`), URL: "https://ocw.mit.edu/courses/electrical-engineering-and-computer-science/6-006-introduction-to-algorithms-fall-2011/readings/", CoverImage: "https://mitpress.mit.edu/sites/default/files/styles/large_book_cover/http/mitp-content-server.mit.edu%3A18180/books/covers/cover/%3Fcollid%3Dbooks_covers_0%26isbn%3D9780262033848%26type%3D.jpg", Format: "PDF", Pages: 1312},
		{Slug: "book-5", Title: "Algorithms, 4th Edition", Author: "Robert Sedgewick, Kevin Wayne", Description: "This book surveys the most important algorithms and data structures in use today. Applications to science, engineering, and industry are a key feature of the text.", Category: "algorithms", Tags: json.RawMessage(`["Algorithms","Java","Data Structures"]`), URL: "https://algs4.cs.princeton.edu/home/", CoverImage: "https://algs4.cs.princeton.edu/cover.png", Format: "Online", Pages: 976},
		{Slug: "book-6", Title: "The Algorithm Design Manual", Author: "Steven S. Skiena", Description: "This book provides a comprehensive introduction to the modern study of computer algorithms. It presents many algorithms and covers them in considerable depth.", Category: "algorithms", Tags: json.RawMessage(`["Algorithm Design","Problem Solving","Data Structures"]`), URL: "https://www.algorist.com/", CoverImage: "https://images.springer.com/sgw/books/medium/9781848000698.jpg", Format: "PDF", Pages: 730},
		{Slug: "book-7", Title: "Cracking the Coding Interview", Author: "Gayle Laakmann McDowell", Description: "A comprehensive book that helps you prepare for coding interviews. It contains 189 programming interview questions and solutions.", Category: "algorithms", Tags: json.RawMessage(`["Interviews","Problem Solving","Career"]`), URL: "https://www.crackingthecodinginterview.com/", CoverImage: "https://images-na.ssl-images-amazon.com/images/I/41oYsXjLvZL._SX348_BO1,204,203,200_.jpg", Format: "PDF", Pages: 708},
		{Slug: "book-8", Title: "Grokking Algorithms", Author: "Aditya Bhargava", Description: "An illustrated guide for programmers and other curious people. It teaches you how to apply common algorithms to practical problems.", Category: "algorithms", Tags: json.RawMessage(`["Algorithms","Illustrated","Beginner Friendly"]`), URL: "https://www.manning.com/books/grokking-algorithms", CoverImage: "https://images.manning.com/book/3/0b325da-eb26-4e50-8a2a-46042c647083/Bhargava-GA-HI.png", Format: "PDF", Pages: 256},
		{Slug: "book-9", Title: "Designing Data-Intensive Applications", Author: "Martin Kleppmann", Description: "This book examines the key principles, algorithms, and trade-offs of data systems, and shows how to build data-intensive applications.", Category: "system-design", Tags: json.RawMessage(`["System Design","Distributed Systems","Data Storage"]`), URL: "https://dataintensive.net/", CoverImage: "https://dataintensive.net/images/book-cover.png", Format: "PDF", Pages: 624},
		{Slug: "book-10", Title: "System Design Interview – An Insider's Guide", Author: "Alex Xu", Description: "A comprehensive guide to preparing for system design interviews. It covers the systematic approach to solving system design problems.", Category: "system-design", Tags: json.RawMessage(`["System Design","Interviews","Architecture"]`), URL: "https://www.amazon.com/System-Design-Interview-insiders-Second/dp/B08CMF2CQF", CoverImage: "https://m.media-amazon.com/images/I/41xedMOGmUL._SX398_BO1,204,203,200_.jpg", Format: "PDF", Pages: 322},
		{Slug: "book-11", Title: "Eloquent JavaScript", Author: "Marijn Haverbeke", Description: "A modern introduction to programming with JavaScript. It teaches the essential elements of programming, including syntax, control, and data structures.", Category: "language-specific", Tags: json.RawMessage(`["JavaScript","Web Development","Programming"]`), URL: "https://eloquentjavascript.net/", CoverImage: "https://eloquentjavascript.net/img/cover.jpg", Format: "Online", Pages: 472},
		{Slug: "book-12", Title: "Python Data Science Handbook", Author: "Jake VanderPlas", Description: "This book provides a comprehensive introduction to the scientific Python ecosystem, covering NumPy, Pandas, Matplotlib, and machine learning.", Category: "language-specific", Tags: json.RawMessage(`["Python","Data Science","Machine Learning"]`), URL: "https://jakevdp.github.io/PythonDataScienceHandbook/", CoverImage: "https://jakevdp.github.io/PythonDataScienceHandbook/figures/PDSH-cover.png", Format: "Online", Pages: 548},
		{Slug: "book-13", Title: "The Rust Programming Language", Author: "Steve Klabnik, Carol Nichols", Description: "The official book on the Rust programming language, written by the Rust team. It teaches concepts like ownership, borrowing, and lifetimes.", Category: "language-specific", Tags: json.RawMessage(`["Rust","Systems Programming","Memory Safety"]`), URL: "https://doc.rust-lang.org/book/", CoverImage: "https://doc.rust-lang.org/book/img/ferris/not_desired_behavior.svg", Format: "Online", Pages: 560},
		{Slug: "book-14", Title: "Mastering Ethereum", Author: "Andreas M. Antonopoulos, Gavin Wood", Description: "A comprehensive guide to the Ethereum blockchain platform. It covers smart contracts, DApps, and the Solidity programming language.", Category: "language-specific", Tags: json.RawMessage(`["Ethereum","Blockchain","Solidity","Smart Contracts"]`), URL: "https://github.com/ethereumbook/ethereumbook", CoverImage: "https://raw.githubusercontent.com/ethereumbook/ethereumbook/develop/images/cover.png", Format: "Online", Pages: 423},
		{Slug: "book-15", Title: "Open Data Structures", Author: "Pat Morin", Description: "An open content textbook that teaches the design and analysis of data structures. It covers arrays, linked lists, trees, and graphs.", Category: "data-structures", Tags: json.RawMessage(`["Data Structures","Algorithms","Computer Science"]`), URL: "https://opendatastructures.org/", CoverImage: "https://opendatastructures.org/ods-java/img1.png", Format: "Online", Pages: 336},
		{Slug: "book-16", Title: "Think Data Structures", Author: "Allen B. Downey", Description: "This book teaches fundamental data structures and algorithms using Java. It emphasizes practical implementation and analysis.", Category: "data-structures", Tags: json.RawMessage(`["Data Structures","Java","Algorithms"]`), URL: "https://greenteapress.com/wp/think-data-structures/", CoverImage: "https://greenteapress.com/thinkapjava/think-data-structures-2016-01-17.png", Format: "PDF", Pages: 182},
		{Slug: "book-17", Title: "Problem Solving with Algorithms and Data Structures using Python", Author: "Bradley N. Miller, David L. Ranum", Description: "This book focuses on fundamental abstract concepts of computer science as well as the Python programming language.", Category: "data-structures", Tags: json.RawMessage(`["Python","Data Structures","Algorithms"]`), URL: "https://runestone.academy/runestone/books/published/pythonds/index.html", CoverImage: "https://runestone.academy/runestone/static/pythonds/_images/PythonDScover.jpg", Format: "Online", Pages: 438},
		{Slug: "book-18", Title: "Docker Deep Dive", Author: "Nigel Poulton", Description: "A comprehensive guide to Docker that covers everything from the basics to advanced topics like orchestration and security.", Category: "language-specific", Tags: json.RawMessage(`["Docker","Containers","DevOps"]`), URL: "https://www.amazon.com/Docker-Deep-Dive-Nigel-Poulton/dp/1521822808", CoverImage: "https://m.media-amazon.com/images/I/41SzsmJa5-L._SX404_BO1,204,203,200_.jpg", Format: "PDF", Pages: 354},
		{Slug: "book-19", Title: "Syncfusion Succinctly Series", Author: "Various Authors", Description: "Over 200 concise, peer-reviewed eBooks (≈100 pages each) on modern programming, data visualization, cloud, and data science—released monthly and available free in PDF and online-reader formats.", Category: "language-specific", Tags: json.RawMessage(`["Multiple Topics","Concise","Free Series"]`), URL: "https://www.syncfusion.com/succinctly-free-ebooks", CoverImage: "https://cdn.syncfusion.com/content/images/downloads/ebooks/ebooks-landing.png", Format: "PDF", Pages: 20000},
		{Slug: "book-20", Title: "Think Python, 2nd Edition", Author: "Allen B. Downey", Description: "Freely available under Creative Commons, providing an in-depth introduction to Python with examples and exercises.", Category: "language-specific", Tags: json.RawMessage(`["Python","Programming","Beginner Friendly"]`), URL: "https://greenteapress.com/wp/think-python-2e/", CoverImage: "https://greenteapress.com/wp/wp-content/uploads/2016/07/think_python2_medium.jpg", Format: "PDF", Pages: 292},
		{Slug: "book-21", Title: "Apress Open Access", Author: "Various Authors", Description: "Apress publishes select titles under open-access licenses, offering free online versions of professional-grade programming and architecture books, with the same editorial quality as their paid catalog.", Category: "system-design", Tags: json.RawMessage(`["Open Access","Professional","Multiple Topics"]`), URL: "https://www.apress.com/gp/apress-open", CoverImage: "https://media.springernature.com/w306/springer-static/cover-hires/book/978-1-4842-5654-6", Format: "PDF", Pages: 5000},
		{Slug: "book-22", Title: "Bookboon – IT & Programming E-Books", Author: "Various Authors", Description: "Free-to-download eBooks on Java, C#, Python, algorithms, and IT management—designed for students and professionals, no credit card required.", Category: "language-specific", Tags: json.RawMessage(`["Multiple Languages","IT Management","Free Download"]`), URL: "https://bookboon.com/en/it-programming-ebooks", CoverImage: "https://bookboon.com/favicon/android-chrome-192x192.png", Format: "PDF", Pages: 3000},
		{Slug: "book-23", Title: "OpenStax Computer Science", Author: "OpenStax Contributors", Description: "A suite of peer-reviewed, openly licensed textbooks (e.g., Introduction to Computer Science, Principles of Data Science, Introduction to Python Programming), available free online with optional PDF downloads.", Category: "algorithms", Tags: json.RawMessage(`["Textbooks","Computer Science","Open Education"]`), URL: "https://openstax.org/subjects/computer-science", CoverImage: "https://openstax.org/apps/archive/20210530.174253/resources/4d50234fc3e0922753614e7644dfc84ccde9500e", Format: "Online/PDF", Pages: 1500},
		{Slug: "book-24", Title: "Open Textbook Library (University of Minnesota)", Author: "Various Authors", Description: "A searchable library of open-access textbooks in computer science, algorithms, and software engineering—each resource peer reviewed and free to use and adapt.", Category: "data-structures", Tags: json.RawMessage(`["Textbooks","Open Access","University"]`), URL: "https://open.umn.edu/opentextbooks/subjects/computer-science-information-systems", CoverImage: "https://open.umn.edu/themes/custom/open/logo.svg", Format: "Multiple", Pages: 4000},
		{Slug: "book-25", Title: "LibreTexts – Computing", Author: "LibreTexts Contributors", Description: "An extensive collection of openly licensed textbooks and modules on programming, data science, cybersecurity, and more, maintained by a consortium of universities.", Category: "algorithms", Tags: json.RawMessage(`["Textbooks","Computing","University Consortium"]`), URL: "https://libretexts.org/subjects/computer-science", CoverImage: "https://libretexts.org/img/LibreTexts.png", Format: "Online", Pages: 5000},
		{Slug: "book-26", Title: "The Architecture of Open Source Applications", Author: "Amy Brown, Greg Wilson", Description: "Describes the architecture of 25+ major open source applications. Learn how large-scale software projects are structured from the people who built them.", Category: "system-design", Tags: json.RawMessage(`["Open Source","Architecture","Case Studies"]`), URL: "https://aosabook.org/en/index.html", CoverImage: "https://aosabook.org/images/cover1.jpg", Format: "Online/PDF", Pages: 432},
		{Slug: "book-27", Title: "Competitive Programmer's Handbook", Author: "Antti Laaksonen", Description: "A comprehensive guide to competitive programming. Covers algorithms, data structures, and techniques used in programming contests like ICPC and Google Code Jam.", Category: "algorithms", Tags: json.RawMessage(`["Competitive Programming","Algorithms","Problem Solving"]`), URL: "https://cses.fi/book/book.pdf", CoverImage: "https://cses.fi/logo.png", Format: "PDF", Pages: 284},
		{Slug: "book-28", Title: "Operating Systems: Three Easy Pieces", Author: "Remzi H. Arpaci-Dusseau, Andrea C. Arpaci-Dusseau", Description: "A free online operating systems book covering virtualization, concurrency, and persistence. Used in many university OS courses.", Category: "system-design", Tags: json.RawMessage(`["Operating Systems","Computer Science","Systems Programming"]`), URL: "https://pages.cs.wisc.edu/~remzi/OSTEP/", CoverImage: "https://pages.cs.wisc.edu/~remzi/OSTEP/book-cover.jpg", Format: "Online/PDF", Pages: 600},
		{Slug: "book-29", Title: "Crafting Interpreters", Author: "Robert Nystrom", Description: "A hands-on guide to implementing programming languages. Build two complete interpreters for a language called Lox from scratch.", Category: "language-specific", Tags: json.RawMessage(`["Interpreters","Compilers","Programming Languages"]`), URL: "https://craftinginterpreters.com/", CoverImage: "https://craftinginterpreters.com/image/header.png", Format: "Online", Pages: 500},
		{Slug: "book-30", Title: "Dive Into Design Patterns", Author: "Alexander Shvets", Description: "An in-depth exploration of design patterns with real-world examples in multiple programming languages. Covers creational, structural, and behavioral patterns.", Category: "system-design", Tags: json.RawMessage(`["Design Patterns","Software Architecture","Object-Oriented Programming"]`), URL: "https://refactoring.guru/design-patterns/book", CoverImage: "https://refactoring.guru/images/content-public/logos/logo-new.png?id=97d554614702483f31e38b32e82d8e34", Format: "Online", Pages: 406},
		{Slug: "book-31", Title: "Interactive Data Structures Visualizations", Author: "VisuAlgo Team", Description: "Not a traditional book but an interactive visualization tool for learning data structures and algorithms. Covers sorting, trees, graphs, and more with step-by-step animations.", Category: "data-structures", Tags: json.RawMessage(`["Visualization","Interactive","Educational"]`), URL: "https://visualgo.net/", CoverImage: "https://visualgo.net/img/png/visualgo-logo.png", Format: "Online", Pages: 100},
	}
}

func seedProjects(db *gorm.DB) error {
	var count int64
	db.Model(&model.Project{}).Count(&count)
	if count > 0 {
		return nil
	}
	seen := make(map[string]bool)
	for _, row := range projectSeed() {
		if seen[row.Slug] {
			continue
		}
		seen[row.Slug] = true
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func projectSeed() []model.Project {
	return []model.Project{
		{Slug: "sorting-visualizer", Title: "Sorting Algorithm Visualizer", Description: "Create an interactive tool that visualizes various sorting algorithms in action.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`["Sorting Algorithms","Animation","Time Complexity"]`), Steps: json.RawMessage(`["Implement at least 5 different sorting algorithms","Create visual representation of the array being sorted","Add controls to adjust speed and array size","Display time complexity information for each algorithm"]`), GithubRepo: "https://github.com/clementmihailescu/Sorting-Visualizer"},
		{Slug: "pathfinding-visualizer", Title: "Pathfinding Algorithm Visualizer", Description: "Build a grid-based visualization tool for pathfinding algorithms like Dijkstra and A*.", Level: model.Level("advanced"), Concepts: json.RawMessage(`["Graph Algorithms","Shortest Path","Heuristics"]`), Steps: json.RawMessage(`["Create an interactive grid with start and end points","Implement Dijkstra's algorithm for shortest path","Add A* algorithm with different heuristics","Visualize the algorithm's progress step by step"]`), GithubRepo: "https://github.com/clementmihailescu/Pathfinding-Visualizer"},
		{Slug: "custom-data-structure-library", Title: "Custom Data Structure Library", Description: "Implement a comprehensive library of data structures from scratch, including linked lists, stacks, queues, trees, heaps, and graphs.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`["Data Structure Internals","Time Complexity","API Design"]`), Steps: json.RawMessage(`["Implement basic data structures (linked lists, stacks, queues)","Add tree-based structures (binary trees, BST, AVL trees)","Implement graph representations and algorithms","Create comprehensive documentation with time complexity analysis"]`), GithubRepo: "https://github.com/trekhleb/javascript-algorithms"},
		{Slug: "sudoku-solver", Title: "Sudoku Solver with Backtracking", Description: "Create a program that can solve Sudoku puzzles using backtracking algorithm, with visualization of the solving process.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`["Backtracking","Constraint Satisfaction","Recursion"]`), Steps: json.RawMessage(`["Implement the core Sudoku solving algorithm using backtracking","Create a visual representation of the puzzle","Add step-by-step visualization of the solving process","Implement puzzle generation with varying difficulty levels"]`), GithubRepo: "https://github.com/ImKennyYip/Sudoku-Solver"},
		{Slug: "compression-tool", Title: "Data Compression Tool", Description: "Build a tool that can compress and decompress text files using Huffman coding or LZW compression algorithms.", Level: model.Level("advanced"), Concepts: json.RawMessage(`["Huffman Coding","LZW Compression","Binary File Handling"]`), Steps: json.RawMessage(`["Implement frequency analysis for characters in text","Create Huffman tree or LZW dictionary for compression","Build encoding and decoding functionality","Add a simple UI to compress/decompress files"]`), GithubRepo: "https://github.com/nayuki/Reference-Huffman-coding"},
		{Slug: "url-shortener", Title: "URL Shortener Service", Description: "Design and implement a URL shortening service similar to bit.ly or TinyURL with analytics capabilities.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`["Hash Functions","Database Design","API Development"]`), Steps: json.RawMessage(`["Create a hashing mechanism to generate short URLs","Implement storage for URL mappings","Build an API for URL creation and redirection","Add analytics to track URL usage"]`), GithubRepo: "https://github.com/thedevdojo/url-shortener"},
		{Slug: "graph-theory-explorer", Title: "Graph Theory Explorer", Description: "Build an interactive application for creating, visualizing, and analyzing graphs with various algorithms.", Level: model.Level("advanced"), Concepts: json.RawMessage(`["Graph Theory","Network Analysis","Visualization"]`), Steps: json.RawMessage(`["Create a UI for building and editing graphs","Implement common graph algorithms (MST, shortest path, etc.)","Add visualization for algorithm execution","Include real-world applications like social network analysis"]`), GithubRepo: "https://github.com/vasturiano/force-graph"},
		{Slug: "memory-management-simulator", Title: "Memory Management Simulator", Description: "Create a visual simulator for different memory allocation strategies and garbage collection algorithms.", Level: model.Level("advanced"), Concepts: json.RawMessage(`["Memory Allocation","Fragmentation","Garbage Collection"]`), Steps: json.RawMessage(`["Implement different allocation strategies (first-fit, best-fit, worst-fit)","Visualize memory usage and fragmentation","Add garbage collection algorithms","Create scenarios to compare different strategies"]`), GithubRepo: "https://github.com/topics/memory-management"},
		{Slug: "genetic-algorithm-playground", Title: "Genetic Algorithm Playground", Description: "Build an interactive environment for solving optimization problems using genetic algorithms.", Level: model.Level("advanced"), Concepts: json.RawMessage(`["Genetic Algorithms","Optimization","Evolution Simulation"]`), Steps: json.RawMessage(`["Implement core genetic algorithm components (selection, crossover, mutation)","Create visualizations of the evolution process","Apply to classic problems like traveling salesman","Allow users to customize parameters and fitness functions"]`), GithubRepo: "https://github.com/Chrispresso/GeneticAlgorithm"},
		{Slug: "simple-search-engine", Title: "Simple Search Engine", Description: "Build a text indexing and search system using tries or inverted indices.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`["Information Retrieval","Indexing","Ranking Algorithms"]`), Steps: json.RawMessage(`["Create a document parser and tokenizer","Implement an inverted index or trie structure","Add basic ranking and relevance scoring","Build a simple search interface"]`), GithubRepo: "https://github.com/topics/search-engine"},
		{Slug: "distributed-key-value-store", Title: "Distributed Key-Value Store", Description: "Build a simple distributed database using consistent hashing with basic CRUD operations and replication.", Level: model.Level("advanced"), Concepts: json.RawMessage(`["Distributed Systems","Consistent Hashing","Replication"]`), Steps: json.RawMessage(`["Implement a consistent hashing mechanism","Create a basic key-value store with CRUD operations","Add data replication across multiple nodes","Implement fault tolerance and partition handling"]`), GithubRepo: "https://github.com/topics/distributed-database"},
		{Slug: "real-time-collaborative-editor", Title: "Real-time Collaborative Editor", Description: "Create a web-based text editor that allows multiple users to edit the same document simultaneously.", Level: model.Level("advanced"), Concepts: json.RawMessage(`["Operational Transformation","CRDTs","Conflict Resolution"]`), Steps: json.RawMessage(`["Implement a basic text editor with cursor management","Add operational transformation or CRDT algorithms","Create a server for synchronizing changes","Implement conflict resolution and consistency"]`), GithubRepo: "https://github.com/yjs/yjs"},
		{Slug: "recommendation-system", Title: "Recommendation System", Description: "Build a content-based or collaborative filtering recommendation system for movies, books, or products.", Level: model.Level("advanced"), Concepts: json.RawMessage(`["Collaborative Filtering","Content-Based Filtering","Similarity Metrics"]`), Steps: json.RawMessage(`["Implement user-item interaction matrix","Create similarity metrics for users and items","Build recommendation algorithms","Evaluate recommendation quality with metrics"]`), GithubRepo: "https://github.com/microsoft/recommenders"},
		{Slug: "load-balancer", Title: "Load Balancer Implementation", Description: "Create a simple load balancer that distributes incoming requests across multiple backend servers.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`["Load Balancing Algorithms","Proxy Design","Health Checks"]`), Steps: json.RawMessage(`["Implement different load balancing strategies (round-robin, least connections)","Create a proxy server to distribute requests","Add health checks for backend servers","Implement automatic failover mechanisms"]`), GithubRepo: "https://github.com/topics/load-balancer"},
		{Slug: "rate-limiter", Title: "Rate Limiter Implementation", Description: "Build different rate limiting algorithms that can be applied to any API to control request rates.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`["Token Bucket","Leaky Bucket","Sliding Window"]`), Steps: json.RawMessage(`["Implement token bucket algorithm","Add leaky bucket and fixed window algorithms","Create middleware for API rate limiting","Visualize rate limiting in action"]`), GithubRepo: "https://github.com/topics/rate-limiter"},
		{Slug: "distributed-web-crawler", Title: "Distributed Web Crawler", Description: "Design a multi-threaded or distributed web crawler that respects robots.txt and creates a simple search index.", Level: model.Level("advanced"), Concepts: json.RawMessage(`["Web Crawling","Distributed Systems","Indexing"]`), Steps: json.RawMessage(`["Implement a basic web crawler with URL frontier","Add support for robots.txt and politeness policies","Create a distributed architecture for parallel crawling","Build a simple search index from crawled content"]`), GithubRepo: "https://github.com/topics/web-crawler"},
		{Slug: "todo-list", Title: "Todo List Application", Description: "Build a simple todo list application to practice basic data operations.", Level: model.Level("beginner"), Concepts: json.RawMessage(`["CRUD Operations","Arrays/Lists","UI Interaction"]`), Steps: json.RawMessage(`["Create data structure to store todo items","Implement add, edit, delete, and mark complete functionality","Add filtering and sorting options","Implement local storage for persistence"]`), GithubRepo: ""},
		{Slug: "calculator", Title: "Calculator with Expression Evaluation", Description: "Create a calculator that can evaluate mathematical expressions using stacks.", Level: model.Level("beginner"), Concepts: json.RawMessage(`["Stack","Expression Parsing","Operator Precedence"]`), Steps: json.RawMessage(`["Implement basic arithmetic operations","Add support for parentheses and operator precedence","Create a user interface for input and display","Handle error cases and edge conditions"]`), GithubRepo: ""},
		{Slug: "tic-tac-toe", Title: "Tic-Tac-Toe Game", Description: "Implement a simple Tic-Tac-Toe game with a basic AI opponent.", Level: model.Level("beginner"), Concepts: json.RawMessage(`["2D Arrays","Game Logic","Minimax Algorithm"]`), Steps: json.RawMessage(`["Create the game board representation","Implement game state checking (win, draw)","Add a simple AI using minimax algorithm","Build a user interface for the game"]`), GithubRepo: ""},
		{Slug: "contact-manager", Title: "Contact Manager", Description: "Build a simple contact management application with search functionality.", Level: model.Level("beginner"), Concepts: json.RawMessage(`["Data Storage","Searching","Sorting"]`), Steps: json.RawMessage(`["Create a data structure to store contacts","Implement add, edit, delete functionality","Add search and filter capabilities","Implement sorting by different fields"]`), GithubRepo: ""},
		{Slug: "text-analyzer", Title: "Text Analyzer", Description: "Create a tool that analyzes text for word frequency, readability, and other metrics.", Level: model.Level("beginner"), Concepts: json.RawMessage(`["String Manipulation","Frequency Counting","Hash Maps"]`), Steps: json.RawMessage(`["Parse and tokenize input text","Count word and character frequencies","Calculate readability metrics","Generate visual reports of the analysis"]`), GithubRepo: ""},
		{Slug: "java-data-structures", Title: "Custom Data Structures Library", Description: "Build your own implementation of common data structures in Java.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`["Object-Oriented Design","Data Structures","Generic Types"]`), Steps: json.RawMessage(`["Implement LinkedList, Stack, Queue, and Binary Tree","Add comprehensive unit tests for each structure","Create documentation with usage examples","Optimize for performance where possible"]`), GithubRepo: "", Language: model.Language("java")},
		{Slug: "python-algorithm-notebook", Title: "Interactive Algorithm Notebook", Description: "Create a Jupyter notebook with interactive visualizations of algorithms.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`["Jupyter Notebooks","Matplotlib","Algorithm Analysis"]`), Steps: json.RawMessage(`["Set up Jupyter environment with necessary libraries","Implement and visualize sorting algorithms","Create interactive graph algorithm demonstrations","Add performance comparison between different approaches"]`), GithubRepo: "", Language: model.Language("python")},
		{Slug: "js-data-structures", Title: "JavaScript Data Structures Library", Description: "Build a comprehensive library of data structures in JavaScript.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`["ES6 Classes","Data Structures","Unit Testing"]`), Steps: json.RawMessage(`["Implement common data structures (LinkedList, Stack, Queue, etc.)","Write unit tests using Jest or Mocha","Create documentation with usage examples","Publish as an npm package"]`), GithubRepo: "https://github.com/trekhleb/javascript-algorithms", Language: model.Language("javascript")},
		{Slug: "cpp-algorithm-library", Title: "C++ Algorithm Library", Description: "Create a library of common algorithms implemented in C++.", Level: model.Level("advanced"), Concepts: json.RawMessage(`["Templates","STL","Algorithm Design"]`), Steps: json.RawMessage(`["Implement sorting, searching, and graph algorithms","Use C++ templates for generic implementations","Create comprehensive documentation","Add performance benchmarks"]`), GithubRepo: "", Language: model.Language("cpp")},
		{Slug: "csharp-data-structures", Title: "C# Data Structures Library", Description: "Build a library of data structures in C#.", Level: model.Level("intermediate"), Concepts: json.RawMessage(`[".NET Classes","Generics","LINQ"]`), Steps: json.RawMessage(`["Implement common data structures","Use C# generics for type safety","Write unit tests using NUnit or MSTest","Create documentation with usage examples"]`), GithubRepo: "", Language: model.Language("csharp")},
	}
}

func seedAlgorithms(db *gorm.DB) error {
	var count int64
	db.Model(&model.Algorithm{}).Count(&count)
	if count > 0 {
		return nil
	}
	seen := make(map[string]bool)
	for _, row := range algorithmSeed() {
		if seen[row.Slug] {
			continue
		}
		seen[row.Slug] = true
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func algorithmSeed() []model.Algorithm {
	return []model.Algorithm{
		{Slug: "quicksort", Name: "Quick Sort", Category: "sorting", Description: "A divide-and-conquer sorting algorithm that works by selecting a pivot element and partitioning the array around the pivot.", TimeBest: "O(n log n)", TimeAverage: "O(n log n)", TimeWorst: "O(n²)", SpaceComplexity: "O(log n)", Characteristics: json.RawMessage(`["Divide and Conquer","In-place","Unstable"]`), LearnMoreURL: "https://www.geeksforgeeks.org/quick-sort/"},
		{Slug: "mergesort", Name: "Merge Sort", Category: "sorting", Description: "A divide-and-conquer sorting algorithm that divides the input array into two halves, recursively sorts them, and then merges the sorted halves.", TimeBest: "O(n log n)", TimeAverage: "O(n log n)", TimeWorst: "O(n log n)", SpaceComplexity: "O(n)", Characteristics: json.RawMessage(`["Divide and Conquer","Stable","Not in-place"]`), LearnMoreURL: "https://www.geeksforgeeks.org/merge-sort/"},
		{Slug: "heapsort", Name: "Heap Sort", Category: "sorting", Description: "A comparison-based sorting algorithm that uses a binary heap data structure. It divides the input into a sorted and an unsorted region, and iteratively shrinks the unsorted region by extracting the largest element.", TimeBest: "O(n log n)", TimeAverage: "O(n log n)", TimeWorst: "O(n log n)", SpaceComplexity: "O(1)", Characteristics: json.RawMessage(`["In-place","Unstable","Selection Sort Variant"]`), LearnMoreURL: "https://www.geeksforgeeks.org/heap-sort/"},
		{Slug: "timsort", Name: "Tim Sort", Category: "sorting", Description: "A hybrid sorting algorithm derived from merge sort and insertion sort, designed to perform well on many kinds of real-world data. It's the default sorting algorithm in Python, Java, and many other languages.", TimeBest: "O(n)", TimeAverage: "O(n log n)", TimeWorst: "O(n log n)", SpaceComplexity: "O(n)", Characteristics: json.RawMessage(`["Hybrid","Stable","Adaptive"]`), LearnMoreURL: "https://www.geeksforgeeks.org/timsort/"},
		{Slug: "binarysearch", Name: "Binary Search", Category: "searching", Description: "A search algorithm that finds the position of a target value within a sorted array by repeatedly dividing the search interval in half.", TimeBest: "O(1)", TimeAverage: "O(log n)", TimeWorst: "O(log n)", SpaceComplexity: "O(1)", Characteristics: json.RawMessage(`["Divide and Conquer","Requires sorted input","Efficient"]`), LearnMoreURL: "https://www.geeksforgeeks.org/binary-search/"},
		{Slug: "linearsearch", Name: "Linear Search", Category: "searching", Description: "A simple search algorithm that checks each element of the list until the desired element is found or the list ends.", TimeBest: "O(1)", TimeAverage: "O(n)", TimeWorst: "O(n)", SpaceComplexity: "O(1)", Characteristics: json.RawMessage(`["Simple","Works on unsorted data","Sequential"]`), LearnMoreURL: "https://www.geeksforgeeks.org/linear-search/"},
		{Slug: "jumpsearch", Name: "Jump Search", Category: "searching", Description: "A search algorithm for sorted arrays that works by jumping ahead by fixed steps and then performing a linear search.", TimeBest: "O(1)", TimeAverage: "O(√n)", TimeWorst: "O(√n)", SpaceComplexity: "O(1)", Characteristics: json.RawMessage(`["Requires sorted input","Block-based","Better than linear search"]`), LearnMoreURL: "https://www.geeksforgeeks.org/jump-search/"},
		{Slug: "dijkstra", Name: "Dijkstra's Algorithm", Category: "graph", Description: "An algorithm for finding the shortest paths between nodes in a weighted graph, which may represent, for example, road networks.", TimeBest: "O(E + V log V)", TimeAverage: "O(E + V log V)", TimeWorst: "O(E + V log V)", SpaceComplexity: "O(V)", Characteristics: json.RawMessage(`["Greedy","Shortest Path","Weighted Graphs"]`), LearnMoreURL: "https://www.geeksforgeeks.org/dijkstras-shortest-path-algorithm-greedy-algo-7/"},
		{Slug: "dfs", Name: "Depth-First Search", Category: "graph", Description: "An algorithm for traversing or searching tree or graph data structures that explores as far as possible along each branch before backtracking.", TimeBest: "O(V + E)", TimeAverage: "O(V + E)", TimeWorst: "O(V + E)", SpaceComplexity: "O(V)", Characteristics: json.RawMessage(`["Graph Traversal","Recursive","Stack-based"]`), LearnMoreURL: "https://www.geeksforgeeks.org/depth-first-search-or-dfs-for-a-graph/"},
		{Slug: "bfs", Name: "Breadth-First Search", Category: "graph", Description: "An algorithm for traversing or searching tree or graph data structures that explores all the vertices at the present depth before moving on to vertices at the next depth level.", TimeBest: "O(V + E)", TimeAverage: "O(V + E)", TimeWorst: "O(V + E)", SpaceComplexity: "O(V)", Characteristics: json.RawMessage(`["Graph Traversal","Queue-based","Shortest Path in Unweighted Graphs"]`), LearnMoreURL: "https://www.geeksforgeeks.org/breadth-first-search-or-bfs-for-a-graph/"},
		{Slug: "astar", Name: "A* Search Algorithm", Category: "graph", Description: "A graph traversal and path search algorithm that is often used in many fields of computer science due to its completeness, optimality, and optimal efficiency.", TimeBest: "O(E)", TimeAverage: "O(E)", TimeWorst: "O(b^d)", SpaceComplexity: "O(V)", Characteristics: json.RawMessage(`["Heuristic","Informed Search","Pathfinding"]`), LearnMoreURL: "https://www.geeksforgeeks.org/a-search-algorithm/"},
		{Slug: "bellmanford", Name: "Bellman-Ford Algorithm", Category: "graph", Description: "An algorithm that computes shortest paths from a single source vertex to all other vertices in a weighted digraph, and can handle graphs with negative weight edges.", TimeBest: "O(V*E)", TimeAverage: "O(V*E)", TimeWorst: "O(V*E)", SpaceComplexity: "O(V)", Characteristics: json.RawMessage(`["Dynamic Programming","Handles Negative Weights","Detects Negative Cycles"]`), LearnMoreURL: "https://www.geeksforgeeks.org/bellman-ford-algorithm-dp-23/"},
		{Slug: "kruskal", Name: "Kruskal's Algorithm", Category: "graph", Description: "A minimum spanning tree algorithm that finds an edge of the least possible weight that connects any two trees in the forest.", TimeBest: "O(E log E)", TimeAverage: "O(E log E)", TimeWorst: "O(E log E)", SpaceComplexity: "O(E + V)", Characteristics: json.RawMessage(`["Greedy","Minimum Spanning Tree","Union-Find"]`), LearnMoreURL: "https://www.geeksforgeeks.org/kruskals-minimum-spanning-tree-algorithm-greedy-algo-2/"},
		{Slug: "knapsack", Name: "0/1 Knapsack Problem", Category: "dynamic", Description: "A problem in combinatorial optimization where given a set of items, each with a weight and a value, determine which items to include in a collection so that the total weight is less than or equal to a given limit and the total value is as large as possible.", TimeBest: "O(nW)", TimeAverage: "O(nW)", TimeWorst: "O(nW)", SpaceComplexity: "O(nW)", Characteristics: json.RawMessage(`["Dynamic Programming","Optimization","NP-Complete"]`), LearnMoreURL: "https://www.geeksforgeeks.org/0-1-knapsack-problem-dp-10/"},
		{Slug: "lcs", Name: "Longest Common Subsequence", Category: "dynamic", Description: "A problem of finding the longest subsequence common to all sequences in a set of sequences. It's a classic computer science problem, the basis of data comparison programs such as the diff utility, and has applications in bioinformatics.", TimeBest: "O(m*n)", TimeAverage: "O(m*n)", TimeWorst: "O(m*n)", SpaceComplexity: "O(m*n)", Characteristics: json.RawMessage(`["Dynamic Programming","String Comparison","Subsequence"]`), LearnMoreURL: "https://www.geeksforgeeks.org/longest-common-subsequence-dp-4/"},
		{Slug: "editdistance", Name: "Edit Distance (Levenshtein Distance)", Category: "dynamic", Description: "A way of quantifying how dissimilar two strings are by counting the minimum number of operations required to transform one string into the other.", TimeBest: "O(m*n)", TimeAverage: "O(m*n)", TimeWorst: "O(m*n)", SpaceComplexity: "O(m*n)", Characteristics: json.RawMessage(`["Dynamic Programming","String Manipulation","Text Similarity"]`), LearnMoreURL: "https://www.geeksforgeeks.org/edit-distance-dp-5/"},
		{Slug: "mcm", Name: "Matrix Chain Multiplication", Category: "dynamic", Description: "An optimization problem that seeks to find the most efficient way to multiply a given sequence of matrices.", TimeBest: "O(n³)", TimeAverage: "O(n³)", TimeWorst: "O(n³)", SpaceComplexity: "O(n²)", Characteristics: json.RawMessage(`["Dynamic Programming","Optimization","Parenthesization"]`), LearnMoreURL: "https://www.geeksforgeeks.org/matrix-chain-multiplication-dp-8/"},
		{Slug: "lis", Name: "Longest Increasing Subsequence", Category: "dynamic", Description: "The problem of finding a subsequence of a given sequence in which the subsequence's elements are in sorted order, lowest to highest, and in which the subsequence is as long as possible.", TimeBest: "O(n log n)", TimeAverage: "O(n log n)", TimeWorst: "O(n²)", SpaceComplexity: "O(n)", Characteristics: json.RawMessage(`["Dynamic Programming","Binary Search Optimization","Subsequence"]`), LearnMoreURL: "https://www.geeksforgeeks.org/longest-increasing-subsequence-dp-3/"},
		{Slug: "kmp", Name: "KMP String Matching", Category: "string", Description: "An efficient string-searching algorithm that uses information about the pattern to minimize the number of comparisons needed to find a match.", TimeBest: "O(n)", TimeAverage: "O(n)", TimeWorst: "O(n+m)", SpaceComplexity: "O(m)", Characteristics: json.RawMessage(`["Pattern Matching","Prefix Function","Linear Time"]`), LearnMoreURL: "https://www.geeksforgeeks.org/kmp-algorithm-for-pattern-searching/"},
		{Slug: "rabin-karp", Name: "Rabin-Karp Algorithm", Category: "string", Description: "A string-searching algorithm that uses hashing to find any one of a set of pattern strings in a text.", TimeBest: "O(n+m)", TimeAverage: "O(n+m)", TimeWorst: "O(n*m)", SpaceComplexity: "O(1)", Characteristics: json.RawMessage(`["Pattern Matching","Hashing","Multiple Pattern Search"]`), LearnMoreURL: "https://www.geeksforgeeks.org/rabin-karp-algorithm-for-pattern-searching/"},
		{Slug: "z-algorithm", Name: "Z Algorithm", Category: "string", Description: "A linear time string matching algorithm that finds all occurrences of a pattern in a text in O(n+m) time, where n is the length of the text and m is the length of the pattern.", TimeBest: "O(n+m)", TimeAverage: "O(n+m)", TimeWorst: "O(n+m)", SpaceComplexity: "O(n+m)", Characteristics: json.RawMessage(`["Pattern Matching","Z-array","Linear Time"]`), LearnMoreURL: "https://www.geeksforgeeks.org/z-algorithm-linear-time-pattern-searching-algorithm/"},
		{Slug: "manacher", Name: "Manacher's Algorithm", Category: "string", Description: "An algorithm that finds the longest palindromic substring in linear time.", TimeBest: "O(n)", TimeAverage: "O(n)", TimeWorst: "O(n)", SpaceComplexity: "O(n)", Characteristics: json.RawMessage(`["Palindrome","Linear Time","String Processing"]`), LearnMoreURL: "https://www.geeksforgeeks.org/manachers-algorithm-linear-time-longest-palindromic-substring-part-1/"},
		{Slug: "trie", Name: "Trie (Prefix Tree)", Category: "string", Description: "A tree-like data structure used to store a dynamic set or associative array where the keys are usually strings.", TimeBest: "O(m)", TimeAverage: "O(m)", TimeWorst: "O(m)", SpaceComplexity: "O(ALPHABET_SIZE * m * n)", Characteristics: json.RawMessage(`["Tree Structure","Prefix Matching","Dictionary Operations"]`), LearnMoreURL: "https://www.geeksforgeeks.org/trie-insert-and-search/"},
	}
}
